package embedding

import (
	"context"
	"fmt"
	"strings"

	"ai-studymate-be/pkg/utils"
)

// DefaultDimension matches Gemini text-embedding-004.
const DefaultDimension = 768

// MaxEmbedChars bounds the text sent to the provider. Longer notes are
// truncated, not rejected. Callers that persist the embedded text apply
// the same bound so the stored document and its vector never diverge.
const MaxEmbedChars = 8000

// Generator wraps an EmbeddingProvider and enforces the embedding
// contract: non-empty input, bounded length, and exact output dimension.
type Generator struct {
	provider  EmbeddingProvider
	dimension int
}

func NewGenerator(provider EmbeddingProvider, dimension int) *Generator {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Generator{
		provider:  provider,
		dimension: dimension,
	}
}

func (g *Generator) Dimension() int {
	return g.dimension
}

func (g *Generator) ProviderName() string {
	return g.provider.Name()
}

// Embed returns one vector of exactly the configured dimension for the
// given text. Empty input (after trimming) fails with ErrEmptyInput.
func (g *Generator) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	trimmed = utils.TruncateRunes(trimmed, MaxEmbedChars)

	vec, err := g.provider.Generate(ctx, trimmed, taskType)
	if err != nil {
		return nil, fmt.Errorf("generate embedding: %w", err)
	}
	if len(vec) != g.dimension {
		return nil, fmt.Errorf("%w: got dimension %d, want %d", ErrProviderContract, len(vec), g.dimension)
	}

	return vec, nil
}

// EmbedBatch filters out blank entries and returns one vector per
// surviving input, in input order. An all-blank batch fails with
// ErrNoValidInput. The whole batch fails if the provider returns a
// mismatched count or dimension; there are no partial results.
func (g *Generator) EmbedBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	valid := make([]string, 0, len(texts))
	for _, text := range texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		valid = append(valid, utils.TruncateRunes(trimmed, MaxEmbedChars))
	}
	if len(valid) == 0 {
		return nil, ErrNoValidInput
	}

	vectors, err := g.provider.GenerateBatch(ctx, valid, taskType)
	if err != nil {
		return nil, fmt.Errorf("generate embedding batch: %w", err)
	}
	if len(vectors) != len(valid) {
		return nil, fmt.Errorf("%w: sent %d inputs, got %d vectors", ErrProviderContract, len(valid), len(vectors))
	}
	for i, vec := range vectors {
		if len(vec) != g.dimension {
			return nil, fmt.Errorf("%w: vector %d has dimension %d, want %d", ErrProviderContract, i, len(vec), g.dimension)
		}
	}

	return vectors, nil
}
