package implementation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithVector(title, raw string) embeddingRow {
	return embeddingRow{
		Id:           uuid.New(),
		NoteId:       uuid.New(),
		UserId:       uuid.New(),
		ContentType:  "full-text",
		Document:     title,
		EmbeddingRaw: raw,
		NoteTitle:    title,
	}
}

func TestRankCandidatesOrdersBySimilarity(t *testing.T) {
	query := []float32{1, 0}
	rows := []embeddingRow{
		rowWithVector("low", "[0, 1]"),       // orthogonal, ~0
		rowWithVector("high", "[1, 0]"),      // identical, 1
		rowWithVector("medium", "[1, 1]"),    // ~0.707
		rowWithVector("negative", "[-1, 0]"), // opposite, -1
	}

	scored := rankCandidates(query, rows, 0, nil)
	require.Len(t, scored, 4)

	assert.Equal(t, "high", scored[0].NoteTitle)
	assert.Equal(t, "medium", scored[1].NoteTitle)
	assert.Equal(t, "low", scored[2].NoteTitle)
	assert.Equal(t, "negative", scored[3].NoteTitle)
	assert.InDelta(t, 1.0, scored[0].Similarity, 1e-6)
}

func TestRankCandidatesAppliesLimit(t *testing.T) {
	query := []float32{1, 0}
	rows := []embeddingRow{
		rowWithVector("a", "[1, 0]"),
		rowWithVector("b", "[0.9, 0.1]"),
		rowWithVector("c", "[0, 1]"),
	}

	scored := rankCandidates(query, rows, 2, nil)
	assert.Len(t, scored, 2)
	assert.Equal(t, "a", scored[0].NoteTitle)
}

func TestRankCandidatesSkipsUndecodableRows(t *testing.T) {
	query := []float32{1, 0}
	rows := []embeddingRow{
		rowWithVector("good", "[1, 0]"),
		rowWithVector("corrupt", "not json"),
		rowWithVector("wrong dimension", "[1, 0, 0]"),
	}

	var skipped []string
	scored := rankCandidates(query, rows, 0, func(row embeddingRow, err error) {
		skipped = append(skipped, row.NoteTitle)
	})

	require.Len(t, scored, 1)
	assert.Equal(t, "good", scored[0].NoteTitle)
	assert.Equal(t, []string{"corrupt", "wrong dimension"}, skipped)
}

func TestRankCandidatesTiesAreStable(t *testing.T) {
	query := []float32{1, 0}
	rows := []embeddingRow{
		rowWithVector("first", "[1, 0]"),
		rowWithVector("second", "[1, 0]"),
	}

	scored := rankCandidates(query, rows, 0, nil)
	require.Len(t, scored, 2)
	assert.Equal(t, "first", scored[0].NoteTitle)
	assert.Equal(t, "second", scored[1].NoteTitle)
}
