package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyUpdatePartialFields(t *testing.T) {
	profile := NewUserKnowledgeProfile(uuid.New())
	profile.TopicsStudied = []string{"biology", "chemistry"}
	profile.StudyPreferences = map[string]interface{}{"session_length": "short"}

	weak := []string{"organic chemistry"}
	now := time.Now()
	profile.ApplyUpdate(ProfileUpdate{WeakAreas: &weak}, now)

	assert.Equal(t, []string{"organic chemistry"}, profile.WeakAreas)
	assert.Equal(t, []string{"biology", "chemistry"}, profile.TopicsStudied, "untouched fields survive a partial update")
	assert.Equal(t, "short", profile.StudyPreferences["session_length"])
	assert.Equal(t, now, profile.UpdatedAt)
}

func TestApplyUpdateReplacesSlicesWholesale(t *testing.T) {
	profile := NewUserKnowledgeProfile(uuid.New())
	profile.TopicsStudied = []string{"biology"}

	topics := []string{"physics"}
	profile.ApplyUpdate(ProfileUpdate{TopicsStudied: &topics}, time.Now())

	assert.Equal(t, []string{"physics"}, profile.TopicsStudied)
}

func TestApplyUpdateMergesMapsKeyByKey(t *testing.T) {
	profile := NewUserKnowledgeProfile(uuid.New())
	profile.StudyPreferences = map[string]interface{}{
		"session_length": "short",
		"format":         "flashcards",
	}

	profile.ApplyUpdate(ProfileUpdate{
		StudyPreferences: map[string]interface{}{"format": "quizzes"},
	}, time.Now())

	assert.Equal(t, "quizzes", profile.StudyPreferences["format"])
	assert.Equal(t, "short", profile.StudyPreferences["session_length"], "setting one preference never wipes the others")
}

func TestApplyUpdateEmptySliceClears(t *testing.T) {
	profile := NewUserKnowledgeProfile(uuid.New())
	profile.WeakAreas = []string{"calculus"}

	empty := []string{}
	profile.ApplyUpdate(ProfileUpdate{WeakAreas: &empty}, time.Now())

	assert.Empty(t, profile.WeakAreas, "an explicit empty slice clears the field")
}
