package unitofwork

import (
	"context"

	"ai-studymate-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	NoteEmbeddingRepository() contract.NoteEmbeddingRepository
	UserQuestionRepository() contract.UserQuestionRepository
	KnowledgeProfileRepository() contract.KnowledgeProfileRepository
}
