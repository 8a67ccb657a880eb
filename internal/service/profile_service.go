package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/specification"
	"ai-studymate-be/internal/repository/unitofwork"
	"ai-studymate-be/pkg/events"
	pktNats "ai-studymate-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	// ErrContextNoteNotOwned is returned when a recorded question references
	// a note that does not exist or belongs to another user.
	ErrContextNoteNotOwned = errors.New("context note not found or not owned by user")

	// ErrQuestionNotFound is returned when feedback targets a question the
	// user does not have.
	ErrQuestionNotFound = errors.New("question not found")
)

// refreshHistoryWindow caps how many recent questions a profile refresh
// aggregates over.
const refreshHistoryWindow = 50

type IStudyProfileService interface {
	RecordQuestion(ctx context.Context, userId uuid.UUID, req *dto.RecordQuestionRequest) (*dto.RecordQuestionResponse, error)
	SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.QuestionFeedbackRequest) error
	GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.QuestionHistoryItem, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	RefreshFromHistory(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type studyProfileService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	cache          *cache.Cache
	log            logger.ILogger
}

func NewStudyProfileService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	profileCache *cache.Cache,
	log logger.ILogger,
) IStudyProfileService {
	return &studyProfileService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		cache:          profileCache,
		log:            log,
	}
}

func profileCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("profile:%s", userId.String())
}

func (s *studyProfileService) RecordQuestion(ctx context.Context, userId uuid.UUID, req *dto.RecordQuestionRequest) (*dto.RecordQuestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if len(req.ContextNoteIds) > 0 {
		if err := s.validateContextNotes(ctx, uow, userId, req.ContextNoteIds); err != nil {
			return nil, err
		}
	}

	question := entity.UserQuestion{
		Id:             uuid.New(),
		UserId:         userId,
		Question:       req.Question,
		Answer:         req.Answer,
		ContextNoteIds: req.ContextNoteIds,
		TopicTags:      req.TopicTags,
		Difficulty:     req.Difficulty,
		CreatedAt:      time.Now(),
	}

	if err := uow.UserQuestionRepository().Create(ctx, &question); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.TypeQuestionRecorded, map[string]interface{}{
		"question_id": question.Id,
		"user_id":     userId,
		"topic_tags":  question.TopicTags,
	})

	return &dto.RecordQuestionResponse{
		Id:        question.Id,
		CreatedAt: question.CreatedAt,
	}, nil
}

// validateContextNotes checks that every referenced note exists and is
// owned by the caller. Duplicate ids are collapsed before counting.
func (s *studyProfileService) validateContextNotes(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, noteIds []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(noteIds))
	uniq := make([]uuid.UUID, 0, len(noteIds))
	for _, id := range noteIds {
		if !seen[id] {
			seen[id] = true
			uniq = append(uniq, id)
		}
	}

	count, err := uow.NoteRepository().Count(ctx,
		specification.ByIDs{IDs: uniq},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if count != int64(len(uniq)) {
		return ErrContextNoteNotOwned
	}
	return nil
}

func (s *studyProfileService) SubmitFeedback(ctx context.Context, userId uuid.UUID, req *dto.QuestionFeedbackRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	question, err := uow.UserQuestionRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	return uow.UserQuestionRepository().UpdateFeedbackScore(ctx, req.Id, userId, req.Score)
}

func (s *studyProfileService) GetHistory(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.QuestionHistoryItem, error) {
	if limit <= 0 {
		limit = refreshHistoryWindow
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, err := uow.UserQuestionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.RecentFirst{},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.QuestionHistoryItem, 0, len(questions))
	for _, q := range questions {
		items = append(items, &dto.QuestionHistoryItem{
			Id:             q.Id,
			Question:       q.Question,
			Answer:         q.Answer,
			ContextNoteIds: q.ContextNoteIds,
			TopicTags:      q.TopicTags,
			Difficulty:     q.Difficulty,
			FeedbackScore:  q.FeedbackScore,
			CreatedAt:      q.CreatedAt,
		})
	}
	return items, nil
}

// GetProfile returns the user's knowledge profile, creating the default
// empty one on first access so callers never see "no profile".
func (s *studyProfileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	if cached, found := s.cache.Get(profileCacheKey(userId)); found {
		if resp, ok := cached.(*dto.ProfileResponse); ok {
			return resp, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := s.loadOrCreateProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile)
	s.cache.Set(profileCacheKey(userId), resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *studyProfileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := s.loadOrCreateProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	profile.ApplyUpdate(entity.ProfileUpdate{
		TopicsStudied:    req.TopicsStudied,
		WeakAreas:        req.WeakAreas,
		StrongAreas:      req.StrongAreas,
		StudyPreferences: req.StudyPreferences,
		QuestionPatterns: req.QuestionPatterns,
	}, time.Now())

	if err := uow.KnowledgeProfileRepository().Save(ctx, profile); err != nil {
		return nil, err
	}

	s.cache.Delete(profileCacheKey(userId))
	return toProfileResponse(profile), nil
}

// RefreshFromHistory recomputes the derived profile fields from the
// user's recent question history.
func (s *studyProfileService) RefreshFromHistory(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := s.loadOrCreateProfile(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	questions, err := uow.UserQuestionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.RecentFirst{},
		specification.Limit{N: refreshHistoryWindow},
	)
	if err != nil {
		return nil, err
	}

	aggregateQuestions(profile, questions, time.Now())

	if err := uow.KnowledgeProfileRepository().Save(ctx, profile); err != nil {
		return nil, err
	}

	s.cache.Delete(profileCacheKey(userId))

	s.log.Info("study-profile", "profile refreshed from history", map[string]interface{}{
		"user_id":   userId.String(),
		"questions": len(questions),
	})
	s.publishEvent(ctx, events.TypeProfileRefreshed, map[string]interface{}{
		"user_id":   userId,
		"questions": len(questions),
	})

	return toProfileResponse(profile), nil
}

func (s *studyProfileService) loadOrCreateProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.UserKnowledgeProfile, error) {
	profile, err := uow.KnowledgeProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	profile = entity.NewUserKnowledgeProfile(userId)
	if err := uow.KnowledgeProfileRepository().Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// publishEvent fires a best-effort domain event. Event delivery never
// fails the calling operation.
func (s *studyProfileService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("study-profile", "failed to publish event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func toProfileResponse(p *entity.UserKnowledgeProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserId:           p.UserId,
		TopicsStudied:    p.TopicsStudied,
		WeakAreas:        p.WeakAreas,
		StrongAreas:      p.StrongAreas,
		StudyPreferences: p.StudyPreferences,
		QuestionPatterns: p.QuestionPatterns,
		UpdatedAt:        p.UpdatedAt,
	}
}
