package contract

import (
	"context"
	"errors"

	"ai-studymate-be/internal/entity"

	"github.com/google/uuid"
)

// StorageMode classifies the embeddings table detected at runtime. It is
// computed once per store instance and treated as immutable for the
// process lifetime.
type StorageMode string

const (
	// StorageModeNativeVector means the embedding column is a pgvector
	// type with built-in distance operators.
	StorageModeNativeVector StorageMode = "native-vector"

	// StorageModeGenericJSON means the embedding column is a generic
	// jsonb array; ranking happens in-process.
	StorageModeGenericJSON StorageMode = "generic-json"

	// StorageModeUnavailable means the embeddings table is not
	// provisioned. Writes no-op and reads return empty.
	StorageModeUnavailable StorageMode = "unavailable"
)

// ErrVectorDimension is returned when a write carries a vector whose
// length differs from the configured dimension. The write fails rather
// than silently truncating.
var ErrVectorDimension = errors.New("embedding store: vector has wrong dimension")

// ScoredNoteEmbedding wraps a NoteEmbedding with the title of its owning
// note and its similarity to the query vector (1.0 = identical).
type ScoredNoteEmbedding struct {
	Embedding  *entity.NoteEmbedding
	NoteTitle  string
	Similarity float64
}

type NoteEmbeddingRepository interface {
	// Mode reports the detected storage mode. A connectivity failure
	// during the probe is an error, never a silent Unavailable.
	Mode(ctx context.Context) (StorageMode, error)

	// Upsert writes or replaces the row keyed by (note id, content type).
	Upsert(ctx context.Context, embedding *entity.NoteEmbedding) error

	// DeleteByNoteId removes every embedding of a note. Idempotent.
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error

	// DeleteByNoteIdAndType removes one (note, content type) row, used by
	// re-embedding flows. Idempotent.
	DeleteByNoteIdAndType(ctx context.Context, noteId uuid.UUID, contentType string) error

	// FindByNoteId returns the stored embeddings of a note.
	FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.NoteEmbedding, error)

	// CountByUserId returns the number of stored embeddings owned by a user.
	CountByUserId(ctx context.Context, userId uuid.UUID) (int64, error)

	// SearchSimilar returns the top-K stored embeddings of a user ranked
	// descending by cosine similarity to the query vector. Returns an
	// empty slice, never an error, when the feature is unprovisioned.
	SearchSimilar(ctx context.Context, userId uuid.UUID, queryVector []float32, limit int) ([]*ScoredNoteEmbedding, error)
}
