package unitofwork

import (
	"context"
	"fmt"

	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db        *gorm.DB
	tx        *gorm.DB // the active transaction, nil outside Begin/Commit
	detector  *implementation.StorageModeDetector
	dimension int
	log       logger.ILogger
}

func NewUnitOfWork(db *gorm.DB, detector *implementation.StorageModeDetector, dimension int, log logger.ILogger) UnitOfWork {
	return &UnitOfWorkImpl{
		db:        db,
		detector:  detector,
		dimension: dimension,
		log:       log,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) NoteRepository() contract.NoteRepository {
	return implementation.NewNoteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NoteEmbeddingRepository() contract.NoteEmbeddingRepository {
	return implementation.NewNoteEmbeddingRepository(u.getDB(), u.detector, u.dimension, u.log)
}

func (u *UnitOfWorkImpl) UserQuestionRepository() contract.UserQuestionRepository {
	return implementation.NewUserQuestionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) KnowledgeProfileRepository() contract.KnowledgeProfileRepository {
	return implementation.NewKnowledgeProfileRepository(u.getDB())
}
