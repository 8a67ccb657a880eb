package entity

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty labels attached to recorded questions.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// UserQuestion records one answered question/answer exchange together
// with the note fragments it was grounded on. Immutable after creation
// except for the feedback score.
type UserQuestion struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Question       string
	Answer         string
	ContextNoteIds []uuid.UUID
	TopicTags      []string
	Difficulty     string
	FeedbackScore  *int
	CreatedAt      time.Time
}
