package service

import (
	"sort"
	"time"

	"ai-studymate-be/internal/entity"
)

// Feedback thresholds used when deriving weak and strong areas from
// question history. Scores run 0..5.
const (
	weakFeedbackCeiling  = 2.5
	strongFeedbackFloor  = 4.0
	patternKeyTopics     = "topic_frequency"
	patternKeyTotal      = "total_questions"
	patternKeyDifficulty = "difficulty_distribution"
)

// aggregateQuestions folds a slice of answered questions into the
// profile: topic frequencies and difficulty distribution land in
// question_patterns, topics join topics_studied, and feedback scores
// split topics into weak and strong areas. Fields without new evidence
// are left as they were.
func aggregateQuestions(profile *entity.UserKnowledgeProfile, questions []*entity.UserQuestion, now time.Time) {
	if len(questions) == 0 {
		return
	}

	topicCounts := map[string]int{}
	difficultyCounts := map[string]int{}
	topicScoreSum := map[string]int{}
	topicScoreN := map[string]int{}

	for _, q := range questions {
		for _, tag := range q.TopicTags {
			topicCounts[tag]++
			if q.FeedbackScore != nil {
				topicScoreSum[tag] += *q.FeedbackScore
				topicScoreN[tag]++
			}
		}
		if q.Difficulty != "" {
			difficultyCounts[q.Difficulty]++
		}
	}

	profile.TopicsStudied = mergeTopics(profile.TopicsStudied, topicCounts)

	weak, strong := splitByFeedback(topicScoreSum, topicScoreN)
	if len(weak) > 0 {
		profile.WeakAreas = weak
	}
	if len(strong) > 0 {
		profile.StrongAreas = strong
	}

	if profile.QuestionPatterns == nil {
		profile.QuestionPatterns = map[string]interface{}{}
	}
	profile.QuestionPatterns[patternKeyTopics] = topicCounts
	profile.QuestionPatterns[patternKeyTotal] = len(questions)
	if len(difficultyCounts) > 0 {
		profile.QuestionPatterns[patternKeyDifficulty] = difficultyCounts
	}

	profile.UpdatedAt = now
}

// mergeTopics unions newly seen topics into the studied list, keeping
// the existing order and appending new topics sorted for determinism.
func mergeTopics(existing []string, counts map[string]int) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(counts))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}

	fresh := make([]string, 0, len(counts))
	for t := range counts {
		if !seen[t] {
			fresh = append(fresh, t)
		}
	}
	sort.Strings(fresh)

	return append(merged, fresh...)
}

// splitByFeedback classifies topics by average feedback score. Topics
// without any feedback stay unclassified.
func splitByFeedback(scoreSum, scoreN map[string]int) (weak, strong []string) {
	for topic, n := range scoreN {
		if n == 0 {
			continue
		}
		avg := float64(scoreSum[topic]) / float64(n)
		switch {
		case avg <= weakFeedbackCeiling:
			weak = append(weak, topic)
		case avg >= strongFeedbackFloor:
			strong = append(strong, topic)
		}
	}
	sort.Strings(weak)
	sort.Strings(strong)
	return weak, strong
}
