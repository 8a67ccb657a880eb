package implementation

import (
	"sort"

	"ai-studymate-be/internal/repository/contract"
	"ai-studymate-be/pkg/embedding"
)

// rankCandidates is the in-process ranking engine of the fallback search
// path: decode each stored vector, score it against the query, sort
// descending, cut to limit. Decode or dimension failures skip the row via
// onSkip; one bad row never discards the rest of the result set.
func rankCandidates(queryVector []float32, rows []embeddingRow, limit int, onSkip func(embeddingRow, error)) []*contract.ScoredNoteEmbedding {
	scored := make([]*contract.ScoredNoteEmbedding, 0, len(rows))

	for _, row := range rows {
		vec, err := decodeVector(row.EmbeddingRaw)
		if err != nil {
			if onSkip != nil {
				onSkip(row, err)
			}
			continue
		}

		similarity, err := embedding.CosineSimilarity(queryVector, vec)
		if err != nil {
			if onSkip != nil {
				onSkip(row, err)
			}
			continue
		}

		scored = append(scored, &contract.ScoredNoteEmbedding{
			Embedding:  row.toEntity(vec),
			NoteTitle:  row.NoteTitle,
			Similarity: similarity,
		})
	}

	// Stable sort preserves the deterministic candidate order for ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
