package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   string     `json:"summary,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type UpdateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type SemanticSearchResponse struct {
	NoteId      uuid.UUID `json:"note_id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	Fragment    string    `json:"fragment"`
	Similarity  float64   `json:"similarity"`
}

// PublishEmbedNoteMessage is the payload of the async embed queue.
type PublishEmbedNoteMessage struct {
	NoteId uuid.UUID `json:"note_id"`
}
