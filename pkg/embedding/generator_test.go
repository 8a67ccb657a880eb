package embedding

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider records what it was asked to embed and returns canned
// vectors.
type stubProvider struct {
	dimension int
	lastTexts []string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	s.lastTexts = []string{text}
	return make([]float32, s.dimension), nil
}

func (s *stubProvider) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	s.lastTexts = texts
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = make([]float32, s.dimension)
	}
	return vectors, nil
}

func TestGeneratorEmbed(t *testing.T) {
	stub := &stubProvider{dimension: 8}
	g := NewGenerator(stub, 8)

	vec, err := g.Embed(context.Background(), "  some note text  ", TaskRetrievalDocument)
	require.NoError(t, err)
	assert.Len(t, vec, 8)
	assert.Equal(t, []string{"some note text"}, stub.lastTexts, "input is trimmed before the provider sees it")
}

func TestGeneratorEmbedEmptyInput(t *testing.T) {
	g := NewGenerator(&stubProvider{dimension: 8}, 8)

	_, err := g.Embed(context.Background(), "   \n\t ", TaskRetrievalQuery)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestGeneratorEmbedDimensionContract(t *testing.T) {
	// Provider emits 4-dim vectors but the generator expects 8.
	g := NewGenerator(&stubProvider{dimension: 4}, 8)

	_, err := g.Embed(context.Background(), "text", TaskRetrievalDocument)
	assert.ErrorIs(t, err, ErrProviderContract)
}

func TestGeneratorEmbedBatchFiltersBlanks(t *testing.T) {
	stub := &stubProvider{dimension: 8}
	g := NewGenerator(stub, 8)

	vectors, err := g.EmbedBatch(context.Background(), []string{"", "valid text", "   "}, TaskRetrievalDocument)
	require.NoError(t, err)
	require.Len(t, vectors, 1, "blank entries are dropped, not embedded")
	assert.Equal(t, []string{"valid text"}, stub.lastTexts)
}

func TestGeneratorEmbedBatchAllBlank(t *testing.T) {
	g := NewGenerator(&stubProvider{dimension: 8}, 8)

	_, err := g.EmbedBatch(context.Background(), []string{"", "  ", "\n"}, TaskRetrievalDocument)
	assert.ErrorIs(t, err, ErrNoValidInput)
}

func TestGeneratorEmbedTruncatesLongInput(t *testing.T) {
	stub := &stubProvider{dimension: 8}
	g := NewGenerator(stub, 8)

	long := strings.Repeat("a", MaxEmbedChars+100)
	_, err := g.Embed(context.Background(), long, TaskRetrievalDocument)
	require.NoError(t, err)

	require.Len(t, stub.lastTexts, 1)
	assert.Equal(t, MaxEmbedChars, len([]rune(stub.lastTexts[0])),
		"provider never sees more than the embed bound")
}

func TestGeneratorDefaultDimension(t *testing.T) {
	g := NewGenerator(&stubProvider{dimension: DefaultDimension}, 0)
	assert.Equal(t, DefaultDimension, g.Dimension())
}
