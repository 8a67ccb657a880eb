package implementation

import (
	"context"
	"errors"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/mapper"
	"ai-studymate-be/internal/model"
	"ai-studymate-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KnowledgeProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeProfileMapper
}

func NewKnowledgeProfileRepository(db *gorm.DB) contract.KnowledgeProfileRepository {
	return &KnowledgeProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeProfileMapper(),
	}
}

func (r *KnowledgeProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserKnowledgeProfile, error) {
	var m model.UserKnowledgeProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeProfileRepositoryImpl) Save(ctx context.Context, profile *entity.UserKnowledgeProfile) error {
	m := r.mapper.ToModel(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}
