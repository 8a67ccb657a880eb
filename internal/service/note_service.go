package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/specification"
	"ai-studymate-be/internal/repository/unitofwork"
	"ai-studymate-be/pkg/embedding"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	SemanticSearch(ctx context.Context, userId uuid.UUID, search string, limit int) ([]*dto.SemanticSearchResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	generator        *embedding.Generator
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	generator *embedding.Generator,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		generator:        generator,
		log:              log,
	}
}

func (c *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	if err := c.publishEmbedMessage(ctx, note.Id); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{
		Id: note.Id,
	}, nil
}

func (c *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil // Not found
	}

	return &dto.ShowNoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		Summary:   note.Summary,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}, nil
}

func (c *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.Summary = req.Summary
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	// Source text changed, so the stored embeddings are stale until the
	// consumer re-embeds. Last writer wins on the (note, content-type) key.
	if err := c.publishEmbedMessage(ctx, note.Id); err != nil {
		return nil, err
	}

	return &dto.UpdateNoteResponse{
		Id: note.Id,
	}, nil
}

func (c *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return nil
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.NoteEmbeddingRepository().DeleteByNoteId(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// SemanticSearch embeds the query and returns the user's top-K note
// fragments ranked by similarity. An unprovisioned embedding store
// yields an empty result set, never an error.
func (c *noteService) SemanticSearch(ctx context.Context, userId uuid.UUID, search string, limit int) ([]*dto.SemanticSearchResponse, error) {
	queryVector, err := c.generator.Embed(ctx, search, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, err
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.NoteEmbeddingRepository().SearchSimilar(ctx, userId, queryVector, limit)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SemanticSearchResponse, 0, len(scored))
	for _, s := range scored {
		response = append(response, &dto.SemanticSearchResponse{
			NoteId:      s.Embedding.NoteId,
			Title:       s.NoteTitle,
			ContentType: s.Embedding.ContentType,
			Fragment:    s.Embedding.Document,
			Similarity:  s.Similarity,
		})
	}
	return response, nil
}

func (c *noteService) publishEmbedMessage(ctx context.Context, noteId uuid.UUID) error {
	payload := dto.PublishEmbedNoteMessage{NoteId: noteId}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.publisherService.Publish(ctx, payloadJson)
}
