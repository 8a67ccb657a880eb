package mapper

import (
	"encoding/json"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserQuestionMapper struct{}

func NewUserQuestionMapper() *UserQuestionMapper {
	return &UserQuestionMapper{}
}

func (m *UserQuestionMapper) ToEntity(e *model.UserQuestion) *entity.UserQuestion {
	if e == nil {
		return nil
	}

	var contextIds []uuid.UUID
	if len(e.ContextNoteIds) > 0 {
		// A malformed column is treated as an empty list rather than a
		// read failure; the question text itself is still usable.
		_ = json.Unmarshal(e.ContextNoteIds, &contextIds)
	}

	var tags []string
	if len(e.TopicTags) > 0 {
		_ = json.Unmarshal(e.TopicTags, &tags)
	}

	return &entity.UserQuestion{
		Id:             e.Id,
		UserId:         e.UserId,
		Question:       e.Question,
		Answer:         e.Answer,
		ContextNoteIds: contextIds,
		TopicTags:      tags,
		Difficulty:     e.Difficulty,
		FeedbackScore:  e.FeedbackScore,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *UserQuestionMapper) ToModel(e *entity.UserQuestion) *model.UserQuestion {
	if e == nil {
		return nil
	}

	contextIds := e.ContextNoteIds
	if contextIds == nil {
		contextIds = []uuid.UUID{}
	}
	tags := e.TopicTags
	if tags == nil {
		tags = []string{}
	}

	contextJson, _ := json.Marshal(contextIds)
	tagsJson, _ := json.Marshal(tags)

	return &model.UserQuestion{
		Id:             e.Id,
		UserId:         e.UserId,
		Question:       e.Question,
		Answer:         e.Answer,
		ContextNoteIds: datatypes.JSON(contextJson),
		TopicTags:      datatypes.JSON(tagsJson),
		Difficulty:     e.Difficulty,
		FeedbackScore:  e.FeedbackScore,
		CreatedAt:      e.CreatedAt,
	}
}

func (m *UserQuestionMapper) ToEntities(questions []*model.UserQuestion) []*entity.UserQuestion {
	entities := make([]*entity.UserQuestion, len(questions))
	for i, q := range questions {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
