package unitofwork

import (
	"context"

	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db        *gorm.DB
	detector  *implementation.StorageModeDetector
	dimension int
	log       logger.ILogger
}

// NewRepositoryFactory shares one storage-mode detector across every
// unit of work, so the embeddings schema is probed once per process.
func NewRepositoryFactory(db *gorm.DB, dimension int, log logger.ILogger) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:        db,
		detector:  implementation.NewStorageModeDetector(db, log),
		dimension: dimension,
		log:       log,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	// UoW is short lived per request; the context is used at Begin() or
	// passed explicitly to repository calls.
	return NewUnitOfWork(f.db, f.detector, f.dimension, f.log)
}
