package mapper

import (
	"encoding/json"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/model"

	"gorm.io/datatypes"
)

type KnowledgeProfileMapper struct{}

func NewKnowledgeProfileMapper() *KnowledgeProfileMapper {
	return &KnowledgeProfileMapper{}
}

func (m *KnowledgeProfileMapper) ToEntity(e *model.UserKnowledgeProfile) *entity.UserKnowledgeProfile {
	if e == nil {
		return nil
	}

	profile := entity.NewUserKnowledgeProfile(e.UserId)
	profile.UpdatedAt = e.UpdatedAt

	if len(e.TopicsStudied) > 0 {
		_ = json.Unmarshal(e.TopicsStudied, &profile.TopicsStudied)
	}
	if len(e.WeakAreas) > 0 {
		_ = json.Unmarshal(e.WeakAreas, &profile.WeakAreas)
	}
	if len(e.StrongAreas) > 0 {
		_ = json.Unmarshal(e.StrongAreas, &profile.StrongAreas)
	}
	if len(e.StudyPreferences) > 0 {
		_ = json.Unmarshal(e.StudyPreferences, &profile.StudyPreferences)
	}
	if len(e.QuestionPatterns) > 0 {
		_ = json.Unmarshal(e.QuestionPatterns, &profile.QuestionPatterns)
	}

	return profile
}

func (m *KnowledgeProfileMapper) ToModel(e *entity.UserKnowledgeProfile) *model.UserKnowledgeProfile {
	if e == nil {
		return nil
	}

	topics, _ := json.Marshal(orEmptySlice(e.TopicsStudied))
	weak, _ := json.Marshal(orEmptySlice(e.WeakAreas))
	strong, _ := json.Marshal(orEmptySlice(e.StrongAreas))
	prefs, _ := json.Marshal(orEmptyMap(e.StudyPreferences))
	patterns, _ := json.Marshal(orEmptyMap(e.QuestionPatterns))

	return &model.UserKnowledgeProfile{
		UserId:           e.UserId,
		TopicsStudied:    datatypes.JSON(topics),
		WeakAreas:        datatypes.JSON(weak),
		StrongAreas:      datatypes.JSON(strong),
		StudyPreferences: datatypes.JSON(prefs),
		QuestionPatterns: datatypes.JSON(patterns),
		UpdatedAt:        e.UpdatedAt,
	}
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
