package service

import (
	"testing"
	"time"

	"ai-studymate-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionWith(tags []string, difficulty string, score *int) *entity.UserQuestion {
	return &entity.UserQuestion{
		Id:         uuid.New(),
		UserId:     uuid.New(),
		Question:   "q",
		TopicTags:  tags,
		Difficulty: difficulty,
		FeedbackScore: score,
		CreatedAt:  time.Now(),
	}
}

func scorePtr(v int) *int { return &v }

func TestAggregateQuestionsTopicsAndPatterns(t *testing.T) {
	profile := entity.NewUserKnowledgeProfile(uuid.New())
	questions := []*entity.UserQuestion{
		questionWith([]string{"biology", "cells"}, entity.DifficultyEasy, nil),
		questionWith([]string{"biology"}, entity.DifficultyHard, nil),
	}

	aggregateQuestions(profile, questions, time.Now())

	assert.ElementsMatch(t, []string{"biology", "cells"}, profile.TopicsStudied)

	freq, ok := profile.QuestionPatterns[patternKeyTopics].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, freq["biology"])
	assert.Equal(t, 1, freq["cells"])
	assert.Equal(t, 2, profile.QuestionPatterns[patternKeyTotal])

	diff, ok := profile.QuestionPatterns[patternKeyDifficulty].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 1, diff[entity.DifficultyEasy])
	assert.Equal(t, 1, diff[entity.DifficultyHard])
}

func TestAggregateQuestionsWeakAndStrongAreas(t *testing.T) {
	profile := entity.NewUserKnowledgeProfile(uuid.New())
	questions := []*entity.UserQuestion{
		questionWith([]string{"calculus"}, entity.DifficultyMedium, scorePtr(1)),
		questionWith([]string{"calculus"}, entity.DifficultyMedium, scorePtr(2)),
		questionWith([]string{"algebra"}, entity.DifficultyEasy, scorePtr(5)),
		questionWith([]string{"geometry"}, entity.DifficultyEasy, scorePtr(3)),
	}

	aggregateQuestions(profile, questions, time.Now())

	assert.Equal(t, []string{"calculus"}, profile.WeakAreas, "avg 1.5 is weak")
	assert.Equal(t, []string{"algebra"}, profile.StrongAreas, "avg 5 is strong")
	assert.NotContains(t, profile.WeakAreas, "geometry", "avg 3 is neither weak nor strong")
}

func TestAggregateQuestionsKeepsExistingTopics(t *testing.T) {
	profile := entity.NewUserKnowledgeProfile(uuid.New())
	profile.TopicsStudied = []string{"history"}

	aggregateQuestions(profile, []*entity.UserQuestion{
		questionWith([]string{"biology"}, "", nil),
	}, time.Now())

	assert.Equal(t, []string{"history", "biology"}, profile.TopicsStudied)
}

func TestAggregateQuestionsEmptyHistoryIsNoop(t *testing.T) {
	profile := entity.NewUserKnowledgeProfile(uuid.New())
	before := profile.UpdatedAt

	aggregateQuestions(profile, nil, time.Now().Add(time.Hour))

	assert.Equal(t, before, profile.UpdatedAt)
	assert.Empty(t, profile.QuestionPatterns)
}

func TestAggregateQuestionsNoFeedbackLeavesAreasUntouched(t *testing.T) {
	profile := entity.NewUserKnowledgeProfile(uuid.New())
	profile.WeakAreas = []string{"statistics"}

	aggregateQuestions(profile, []*entity.UserQuestion{
		questionWith([]string{"statistics"}, entity.DifficultyHard, nil),
	}, time.Now())

	assert.Equal(t, []string{"statistics"}, profile.WeakAreas, "no feedback means no reclassification")
}
