package implementation

import (
	"context"
	"fmt"
	"time"

	"ai-studymate-be/internal/entity"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

const defaultSearchLimit = 5

// NoteEmbeddingRepositoryImpl hides the storage-engine variability of the
// embeddings table behind one upsert/delete/read contract. The detector
// classifies the table as native-vector, generic-json, or unavailable;
// every operation branches on that mode explicitly.
type NoteEmbeddingRepositoryImpl struct {
	db        *gorm.DB
	detector  *StorageModeDetector
	dimension int
	log       logger.ILogger
}

func NewNoteEmbeddingRepository(db *gorm.DB, detector *StorageModeDetector, dimension int, log logger.ILogger) contract.NoteEmbeddingRepository {
	return &NoteEmbeddingRepositoryImpl{
		db:        db,
		detector:  detector,
		dimension: dimension,
		log:       log,
	}
}

func (r *NoteEmbeddingRepositoryImpl) Mode(ctx context.Context) (contract.StorageMode, error) {
	return r.detector.Mode(ctx)
}

// embeddingRow is the raw scan target shared by both storage modes.
// embedding_value is always selected as text: the pgvector literal and
// the jsonb text form both decode through decodeVector.
type embeddingRow struct {
	Id           uuid.UUID
	NoteId       uuid.UUID
	UserId       uuid.UUID
	ContentType  string
	Document     string
	EmbeddingRaw string
	NoteTitle    string
	Similarity   float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (row embeddingRow) toEntity(vec []float32) *entity.NoteEmbedding {
	var updatedAt *time.Time
	if !row.UpdatedAt.IsZero() {
		t := row.UpdatedAt
		updatedAt = &t
	}
	return &entity.NoteEmbedding{
		Id:             row.Id,
		NoteId:         row.NoteId,
		UserId:         row.UserId,
		ContentType:    row.ContentType,
		Document:       row.Document,
		EmbeddingValue: vec,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (r *NoteEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.NoteEmbedding) error {
	if len(embedding.EmbeddingValue) != r.dimension {
		return fmt.Errorf("%w: got %d, want %d",
			contract.ErrVectorDimension, len(embedding.EmbeddingValue), r.dimension)
	}
	if embedding.Id == uuid.Nil {
		embedding.Id = uuid.New()
	}
	if embedding.ContentType == "" {
		embedding.ContentType = entity.ContentTypeFullText
	}

	mode, err := r.Mode(ctx)
	if err != nil {
		return err
	}

	switch mode {
	case contract.StorageModeNativeVector:
		return r.db.WithContext(ctx).Exec(`
			INSERT INTO note_embeddings (id, note_id, user_id, content_type, document, embedding_value, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())
			ON CONFLICT (note_id, content_type) DO UPDATE
			SET document = EXCLUDED.document,
			    embedding_value = EXCLUDED.embedding_value,
			    user_id = EXCLUDED.user_id,
			    updated_at = NOW()`,
			embedding.Id, embedding.NoteId, embedding.UserId, embedding.ContentType,
			embedding.Document, pgvector.NewVector(embedding.EmbeddingValue),
		).Error

	case contract.StorageModeGenericJSON:
		encoded, err := encodeVectorJSON(embedding.EmbeddingValue)
		if err != nil {
			return err
		}
		return r.db.WithContext(ctx).Exec(`
			INSERT INTO note_embeddings (id, note_id, user_id, content_type, document, embedding_value, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?::jsonb, NOW(), NOW())
			ON CONFLICT (note_id, content_type) DO UPDATE
			SET document = EXCLUDED.document,
			    embedding_value = EXCLUDED.embedding_value,
			    user_id = EXCLUDED.user_id,
			    updated_at = NOW()`,
			embedding.Id, embedding.NoteId, embedding.UserId, embedding.ContentType,
			embedding.Document, encoded,
		).Error

	default:
		// Feature not provisioned: the write is accepted as a no-op so
		// note flows keep working without the retrieval feature.
		r.log.Debug("embedding-store", "upsert skipped, storage unavailable", map[string]interface{}{
			"note_id": embedding.NoteId.String(),
		})
		return nil
	}
}

func (r *NoteEmbeddingRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	mode, err := r.Mode(ctx)
	if err != nil {
		return err
	}
	if mode == contract.StorageModeUnavailable {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec(`DELETE FROM note_embeddings WHERE note_id = ?`, noteId).Error
}

func (r *NoteEmbeddingRepositoryImpl) DeleteByNoteIdAndType(ctx context.Context, noteId uuid.UUID, contentType string) error {
	mode, err := r.Mode(ctx)
	if err != nil {
		return err
	}
	if mode == contract.StorageModeUnavailable {
		return nil
	}
	return r.db.WithContext(ctx).
		Exec(`DELETE FROM note_embeddings WHERE note_id = ? AND content_type = ?`, noteId, contentType).Error
}

func (r *NoteEmbeddingRepositoryImpl) FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.NoteEmbedding, error) {
	mode, err := r.Mode(ctx)
	if err != nil {
		return nil, err
	}
	if mode == contract.StorageModeUnavailable {
		return []*entity.NoteEmbedding{}, nil
	}

	var rows []embeddingRow
	err = r.db.WithContext(ctx).Raw(`
		SELECT id, note_id, user_id, content_type, document,
		       embedding_value::text AS embedding_raw,
		       created_at, updated_at
		FROM note_embeddings
		WHERE note_id = ?
		ORDER BY content_type`, noteId).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.NoteEmbedding, 0, len(rows))
	for _, row := range rows {
		vec, err := decodeVector(row.EmbeddingRaw)
		if err != nil {
			r.logSkippedRow(row, err)
			continue
		}
		entities = append(entities, row.toEntity(vec))
	}
	return entities, nil
}

func (r *NoteEmbeddingRepositoryImpl) CountByUserId(ctx context.Context, userId uuid.UUID) (int64, error) {
	mode, err := r.Mode(ctx)
	if err != nil {
		return 0, err
	}
	if mode == contract.StorageModeUnavailable {
		return 0, nil
	}
	var count int64
	err = r.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM note_embeddings WHERE user_id = ?`, userId).
		Row().
		Scan(&count)
	return count, err
}

// SearchSimilar returns the user's top-K embeddings ranked descending by
// cosine similarity. The native path trusts the storage engine's ordering
// and does no client-side re-sort; the fallback path loads every row the
// user owns and ranks in-process. Correct at small per-user corpus sizes;
// an index-backed store is a drop-in replacement behind this contract.
func (r *NoteEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, userId uuid.UUID, queryVector []float32, limit int) ([]*contract.ScoredNoteEmbedding, error) {
	if len(queryVector) != r.dimension {
		return nil, fmt.Errorf("%w: query vector has %d components, want %d",
			contract.ErrVectorDimension, len(queryVector), r.dimension)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	mode, err := r.Mode(ctx)
	if err != nil {
		return nil, err
	}

	switch mode {
	case contract.StorageModeNativeVector:
		return r.searchNative(ctx, userId, queryVector, limit)
	case contract.StorageModeGenericJSON:
		return r.searchFallback(ctx, userId, queryVector, limit)
	default:
		// Unprovisioned feature: "no results" is a valid outcome.
		return []*contract.ScoredNoteEmbedding{}, nil
	}
}

func (r *NoteEmbeddingRepositoryImpl) searchNative(ctx context.Context, userId uuid.UUID, queryVector []float32, limit int) ([]*contract.ScoredNoteEmbedding, error) {
	qv := pgvector.NewVector(queryVector)

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding_value <=> query) recovers the similarity.
	var rows []embeddingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ne.id, ne.note_id, ne.user_id, ne.content_type, ne.document,
		       ne.embedding_value::text AS embedding_raw,
		       ne.created_at, ne.updated_at,
		       notes.title AS note_title,
		       1 - (ne.embedding_value <=> ?) AS similarity
		FROM note_embeddings ne
		JOIN notes ON notes.id = ne.note_id
		WHERE ne.user_id = ? AND notes.deleted_at IS NULL
		ORDER BY ne.embedding_value <=> ?
		LIMIT ?`, qv, userId, qv, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]*contract.ScoredNoteEmbedding, 0, len(rows))
	for _, row := range rows {
		vec, err := decodeVector(row.EmbeddingRaw)
		if err != nil {
			r.logSkippedRow(row, err)
			continue
		}
		results = append(results, &contract.ScoredNoteEmbedding{
			Embedding:  row.toEntity(vec),
			NoteTitle:  row.NoteTitle,
			Similarity: row.Similarity,
		})
	}
	return results, nil
}

func (r *NoteEmbeddingRepositoryImpl) searchFallback(ctx context.Context, userId uuid.UUID, queryVector []float32, limit int) ([]*contract.ScoredNoteEmbedding, error) {
	// Deterministic candidate order keeps equal-similarity ties stable
	// across invocations with identical input.
	var rows []embeddingRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ne.id, ne.note_id, ne.user_id, ne.content_type, ne.document,
		       ne.embedding_value::text AS embedding_raw,
		       ne.created_at, ne.updated_at,
		       notes.title AS note_title
		FROM note_embeddings ne
		JOIN notes ON notes.id = ne.note_id
		WHERE ne.user_id = ? AND notes.deleted_at IS NULL
		ORDER BY ne.created_at, ne.id`, userId).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rankCandidates(queryVector, rows, limit, r.logSkippedRow), nil
}

func (r *NoteEmbeddingRepositoryImpl) logSkippedRow(row embeddingRow, err error) {
	r.log.Warn("embedding-store", "skipping embedding row", map[string]interface{}{
		"embedding_id": row.Id.String(),
		"note_id":      row.NoteId.String(),
		"content_type": row.ContentType,
		"error":        err.Error(),
	})
}
