package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ai-studymate-be/internal/dto"
	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/specification"
	"ai-studymate-be/internal/repository/unitofwork"
	"ai-studymate-be/pkg/embedding"
	"ai-studymate-be/pkg/utils"
	"ai-studymate-be/pkg/events"
	pktNats "ai-studymate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// canonicalDocument normalizes fragment text to exactly what the
// generator embeds, so the persisted document always matches its vector.
func canonicalDocument(text string) string {
	return utils.TruncateRunes(strings.TrimSpace(text), embedding.MaxEmbedChars)
}

// IConsumerService drains the embed queue: for each note it generates
// one embedding per content type and upserts them into the store.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	generator      *embedding.Generator
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	generator *embedding.Generator,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		generator:      generator,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedNoteMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("embed-consumer", "failed to unmarshal embed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.embedNote(ctx, payload.NoteId); err != nil {
		cs.log.Error("embed-consumer", "failed to embed note", map[string]interface{}{
			"note_id": payload.NoteId.String(),
			"error":   err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

func (cs *consumerService) embedNote(ctx context.Context, noteId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil {
		// Note deleted before the consumer got to it. Nothing to embed.
		cs.log.Debug("embed-consumer", "note vanished before embedding", map[string]interface{}{
			"note_id": noteId.String(),
		})
		return nil
	}

	// One fragment per content type; blank fragments are dropped before
	// the batch call so the provider sees only valid input.
	type noteFragment struct {
		contentType string
		text        string
	}
	fragments := []noteFragment{
		{entity.ContentTypeFullText, note.Content},
		{entity.ContentTypeSummary, note.Summary},
	}

	valid := make([]noteFragment, 0, len(fragments))
	texts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if isBlank(f.text) {
			// Stale rows for a now-blank fragment must not keep ranking.
			if err := uow.NoteEmbeddingRepository().DeleteByNoteIdAndType(ctx, note.Id, f.contentType); err != nil {
				return err
			}
			continue
		}
		valid = append(valid, f)
		texts = append(texts, canonicalDocument(f.text))
	}

	if len(texts) == 0 {
		return nil
	}

	vectors, err := cs.generator.EmbedBatch(ctx, texts, embedding.TaskRetrievalDocument)
	if err != nil {
		if errors.Is(err, embedding.ErrNoValidInput) {
			return nil
		}
		return err
	}

	for i, f := range valid {
		emb := &entity.NoteEmbedding{
			NoteId:         note.Id,
			UserId:         note.UserId,
			ContentType:    f.contentType,
			Document:       texts[i],
			EmbeddingValue: vectors[i],
		}
		if err := uow.NoteEmbeddingRepository().Upsert(ctx, emb); err != nil {
			return err
		}
	}

	cs.log.Info("embed-consumer", "note embedded", map[string]interface{}{
		"note_id":   note.Id.String(),
		"fragments": len(valid),
		"provider":  cs.generator.ProviderName(),
	})

	// Event is auxiliary; failure to publish never fails the embed.
	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeNoteEmbedded,
			Data: map[string]interface{}{
				"note_id":   note.Id,
				"user_id":   note.UserId,
				"fragments": len(valid),
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.log.Warn("embed-consumer", "failed to publish NOTE_EMBEDDED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return nil
}
