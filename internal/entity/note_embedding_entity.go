package entity

import (
	"time"

	"github.com/google/uuid"
)

// Content types for embedded note fragments. One row per
// (note, content type) pair.
const (
	ContentTypeFullText = "full-text"
	ContentTypeSummary  = "summary"
)

type NoteEmbedding struct {
	Id             uuid.UUID
	NoteId         uuid.UUID
	UserId         uuid.UUID
	ContentType    string
	Document       string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
