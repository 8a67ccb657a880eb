package contract

import (
	"context"

	"ai-studymate-be/internal/entity"

	"github.com/google/uuid"
)

type KnowledgeProfileRepository interface {
	// FindByUserId returns nil (not an error) when the user has no
	// profile yet.
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserKnowledgeProfile, error)

	// Save upserts the whole profile row.
	Save(ctx context.Context, profile *entity.UserKnowledgeProfile) error
}
