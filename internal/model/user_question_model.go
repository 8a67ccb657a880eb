package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserQuestion struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question       string         `gorm:"type:text;not null"`
	Answer         string         `gorm:"type:text"`
	ContextNoteIds datatypes.JSON `gorm:"type:jsonb"`
	TopicTags      datatypes.JSON `gorm:"type:jsonb"`
	Difficulty     string
	FeedbackScore  *int
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}

func (UserQuestion) TableName() string {
	return "user_questions"
}
