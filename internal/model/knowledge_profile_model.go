package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserKnowledgeProfile struct {
	UserId           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TopicsStudied    datatypes.JSON `gorm:"type:jsonb"`
	WeakAreas        datatypes.JSON `gorm:"type:jsonb"`
	StrongAreas      datatypes.JSON `gorm:"type:jsonb"`
	StudyPreferences datatypes.JSON `gorm:"type:jsonb"`
	QuestionPatterns datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (UserKnowledgeProfile) TableName() string {
	return "user_knowledge_profiles"
}
