package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserId           uuid.UUID              `json:"user_id"`
	TopicsStudied    []string               `json:"topics_studied"`
	WeakAreas        []string               `json:"weak_areas"`
	StrongAreas      []string               `json:"strong_areas"`
	StudyPreferences map[string]interface{} `json:"study_preferences"`
	QuestionPatterns map[string]interface{} `json:"question_patterns"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// UpdateProfileRequest is a partial update: nil fields are left
// untouched.
type UpdateProfileRequest struct {
	TopicsStudied    *[]string              `json:"topics_studied"`
	WeakAreas        *[]string              `json:"weak_areas"`
	StrongAreas      *[]string              `json:"strong_areas"`
	StudyPreferences map[string]interface{} `json:"study_preferences"`
	QuestionPatterns map[string]interface{} `json:"question_patterns"`
}
