package contract

import (
	"context"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserQuestionRepository interface {
	Create(ctx context.Context, question *entity.UserQuestion) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserQuestion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserQuestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateFeedbackScore is the only mutation allowed after creation.
	UpdateFeedbackScore(ctx context.Context, id uuid.UUID, userId uuid.UUID, score int) error
}
