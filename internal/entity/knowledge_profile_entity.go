package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserKnowledgeProfile summarizes a user's study history. Exactly one
// per user, created lazily on first access.
type UserKnowledgeProfile struct {
	UserId           uuid.UUID
	TopicsStudied    []string
	WeakAreas        []string
	StrongAreas      []string
	StudyPreferences map[string]interface{}
	QuestionPatterns map[string]interface{}
	UpdatedAt        time.Time
}

// NewUserKnowledgeProfile returns the default empty profile for a fresh
// user.
func NewUserKnowledgeProfile(userId uuid.UUID) *UserKnowledgeProfile {
	return &UserKnowledgeProfile{
		UserId:           userId,
		TopicsStudied:    []string{},
		WeakAreas:        []string{},
		StrongAreas:      []string{},
		StudyPreferences: map[string]interface{}{},
		QuestionPatterns: map[string]interface{}{},
		UpdatedAt:        time.Now(),
	}
}

// ProfileUpdate carries a partial profile mutation. Nil fields are left
// untouched by ApplyUpdate.
type ProfileUpdate struct {
	TopicsStudied    *[]string
	WeakAreas        *[]string
	StrongAreas      *[]string
	StudyPreferences map[string]interface{}
	QuestionPatterns map[string]interface{}
}

// ApplyUpdate merges only the provided fields into the profile and
// refreshes the timestamp. Slice fields are replaced wholesale; map
// fields are merged key by key so setting one preference never wipes
// the others.
func (p *UserKnowledgeProfile) ApplyUpdate(u ProfileUpdate, now time.Time) {
	if u.TopicsStudied != nil {
		p.TopicsStudied = *u.TopicsStudied
	}
	if u.WeakAreas != nil {
		p.WeakAreas = *u.WeakAreas
	}
	if u.StrongAreas != nil {
		p.StrongAreas = *u.StrongAreas
	}
	if u.StudyPreferences != nil {
		if p.StudyPreferences == nil {
			p.StudyPreferences = map[string]interface{}{}
		}
		for k, v := range u.StudyPreferences {
			p.StudyPreferences[k] = v
		}
	}
	if u.QuestionPatterns != nil {
		if p.QuestionPatterns == nil {
			p.QuestionPatterns = map[string]interface{}{}
		}
		for k, v := range u.QuestionPatterns {
			p.QuestionPatterns[k] = v
		}
	}
	p.UpdatedAt = now
}
