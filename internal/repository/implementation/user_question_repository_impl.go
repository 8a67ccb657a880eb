package implementation

import (
	"context"
	"errors"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/model"
	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserQuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserQuestionMapper
}

func NewUserQuestionRepository(db *gorm.DB) contract.UserQuestionRepository {
	return &UserQuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserQuestionMapper(),
	}
}

func (r *UserQuestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserQuestionRepositoryImpl) Create(ctx context.Context, question *entity.UserQuestion) error {
	m := r.mapper.ToModel(question)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*question = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserQuestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserQuestion, error) {
	var m model.UserQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserQuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserQuestion, error) {
	var models []*model.UserQuestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserQuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.UserQuestion{}).Count(&count).Error
	return count, err
}

// UpdateFeedbackScore mutates only the feedback column; everything else
// on a recorded question is immutable.
func (r *UserQuestionRepositoryImpl) UpdateFeedbackScore(ctx context.Context, id uuid.UUID, userId uuid.UUID, score int) error {
	return r.db.WithContext(ctx).
		Model(&model.UserQuestion{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("feedback_score", score).Error
}
