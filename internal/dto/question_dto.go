package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordQuestionRequest struct {
	Question       string      `json:"question" validate:"required"`
	Answer         string      `json:"answer"`
	ContextNoteIds []uuid.UUID `json:"context_note_ids"`
	TopicTags      []string    `json:"topic_tags"`
	Difficulty     string      `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type RecordQuestionResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionFeedbackRequest struct {
	Id    uuid.UUID
	Score int `json:"score" validate:"min=0,max=5"`
}

type QuestionHistoryItem struct {
	Id             uuid.UUID   `json:"id"`
	Question       string      `json:"question"`
	Answer         string      `json:"answer"`
	ContextNoteIds []uuid.UUID `json:"context_note_ids"`
	TopicTags      []string    `json:"topic_tags"`
	Difficulty     string      `json:"difficulty,omitempty"`
	FeedbackScore  *int        `json:"feedback_score,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
