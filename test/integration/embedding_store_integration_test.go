package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/internal/repository/unitofwork"
	"ai-studymate-be/pkg/database"
	"ai-studymate-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the embedding store against a real database in whichever
// storage mode it is provisioned with (pgvector or jsonb fallback), so
// the same assertions cover both provisioning paths of cmd/migrate.
func TestEmbeddingStore(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB, embedding.DefaultDimension, logger.NewNopLogger())
	uow := uowFactory.NewUnitOfWork(ctx)

	mode, err := uow.NoteEmbeddingRepository().Mode(ctx)
	require.NoError(t, err)
	if mode == contract.StorageModeUnavailable {
		t.Skip("Skipping: note_embeddings table not provisioned (run cmd/migrate)")
	}
	t.Logf("Embedding storage mode: %s", mode)

	provider := embedding.NewSyntheticProvider(embedding.DefaultDimension)
	vectorFor := func(text string) []float32 {
		vec, err := provider.Generate(ctx, text, embedding.TaskRetrievalDocument)
		require.NoError(t, err)
		return vec
	}

	userA := uuid.New()
	userB := uuid.New()

	makeNote := func(userId uuid.UUID, title, content string) *entity.Note {
		note := &entity.Note{
			Id:        uuid.New(),
			Title:     title,
			Content:   content,
			UserId:    userId,
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))
		return note
	}

	noteA := makeNote(userA, "Photosynthesis", "Chlorophyll absorbs red and blue light.")
	noteB := makeNote(userB, "Thermodynamics", "Entropy never decreases in a closed system.")

	t.Cleanup(func() {
		_ = uow.NoteEmbeddingRepository().DeleteByNoteId(ctx, noteA.Id)
		_ = uow.NoteEmbeddingRepository().DeleteByNoteId(ctx, noteB.Id)
		_ = uow.NoteRepository().Delete(ctx, noteA.Id)
		_ = uow.NoteRepository().Delete(ctx, noteB.Id)
	})

	t.Run("Upsert and read round-trip", func(t *testing.T) {
		vec := vectorFor(noteA.Content)
		emb := &entity.NoteEmbedding{
			NoteId:         noteA.Id,
			UserId:         userA,
			ContentType:    entity.ContentTypeFullText,
			Document:       noteA.Content,
			EmbeddingValue: vec,
		}
		require.NoError(t, uow.NoteEmbeddingRepository().Upsert(ctx, emb))

		stored, err := uow.NoteEmbeddingRepository().FindByNoteId(ctx, noteA.Id)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, noteA.Content, stored[0].Document)
		require.Len(t, stored[0].EmbeddingValue, embedding.DefaultDimension)
		for i := 0; i < 5; i++ {
			assert.InDelta(t, float64(vec[i]), float64(stored[0].EmbeddingValue[i]), 1e-5)
		}
	})

	t.Run("Double upsert leaves one row", func(t *testing.T) {
		replacement := &entity.NoteEmbedding{
			NoteId:         noteA.Id,
			UserId:         userA,
			ContentType:    entity.ContentTypeFullText,
			Document:       "revised content",
			EmbeddingValue: vectorFor("revised content"),
		}
		require.NoError(t, uow.NoteEmbeddingRepository().Upsert(ctx, replacement))

		stored, err := uow.NoteEmbeddingRepository().FindByNoteId(ctx, noteA.Id)
		require.NoError(t, err)
		require.Len(t, stored, 1, "(note_id, content_type) key replaces, never duplicates")
		assert.Equal(t, "revised content", stored[0].Document)
	})

	t.Run("Search is scoped to the owning user", func(t *testing.T) {
		embB := &entity.NoteEmbedding{
			NoteId:         noteB.Id,
			UserId:         userB,
			ContentType:    entity.ContentTypeFullText,
			Document:       noteB.Content,
			EmbeddingValue: vectorFor(noteB.Content),
		}
		require.NoError(t, uow.NoteEmbeddingRepository().Upsert(ctx, embB))

		// Query with user B's own document vector: a perfect match exists,
		// but it must never leak into user A's results.
		results, err := uow.NoteEmbeddingRepository().SearchSimilar(ctx, userA, vectorFor(noteB.Content), 10)
		require.NoError(t, err)
		for _, r := range results {
			assert.Equal(t, userA, r.Embedding.UserId)
			assert.NotEqual(t, noteB.Id, r.Embedding.NoteId)
		}

		resultsB, err := uow.NoteEmbeddingRepository().SearchSimilar(ctx, userB, vectorFor(noteB.Content), 10)
		require.NoError(t, err)
		require.NotEmpty(t, resultsB)
		assert.Equal(t, noteB.Id, resultsB[0].Embedding.NoteId)
		assert.InDelta(t, 1.0, resultsB[0].Similarity, 1e-4)
	})

	t.Run("Wrong dimension is rejected before the database", func(t *testing.T) {
		bad := &entity.NoteEmbedding{
			NoteId:         noteA.Id,
			UserId:         userA,
			ContentType:    entity.ContentTypeSummary,
			Document:       "short vector",
			EmbeddingValue: []float32{1, 2, 3},
		}
		err := uow.NoteEmbeddingRepository().Upsert(ctx, bad)
		assert.ErrorIs(t, err, contract.ErrVectorDimension)
	})
}
