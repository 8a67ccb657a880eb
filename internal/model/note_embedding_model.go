package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// NoteEmbedding is the native-vector shape of the embeddings table, used
// for migration and for the pgvector search path. When the database has
// no vector extension the same table carries a jsonb embedding_value
// column instead; that mode is handled with raw SQL in the repository,
// never through this model.
type NoteEmbedding struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_note_embeddings_note_type"`
	ContentType    string          `gorm:"not null;default:'full-text';uniqueIndex:idx_note_embeddings_note_type"`
	UserId         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Document       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
}

func (NoteEmbedding) TableName() string {
	return "note_embeddings"
}
