package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
)

// SyntheticProvider generates deterministic pseudo-random vectors so the
// storage and retrieval pipeline can be exercised without a model
// credential. The vectors carry no semantic meaning; callers that wire
// this provider must log the fact loudly.
type SyntheticProvider struct {
	Dimension int
}

func NewSyntheticProvider(dimension int) EmbeddingProvider {
	return &SyntheticProvider{Dimension: dimension}
}

func (p *SyntheticProvider) Name() string {
	return "synthetic"
}

func (p *SyntheticProvider) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	return p.vectorFor(text), nil
}

func (p *SyntheticProvider) GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = p.vectorFor(text)
	}
	return vectors, nil
}

// vectorFor derives a unit-norm vector seeded by the text content, so the
// same input always maps to the same placeholder embedding.
func (p *SyntheticProvider) vectorFor(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	vec := make([]float32, p.Dimension)
	var norm float64
	for i := range vec {
		v := rng.Float64()*2 - 1
		vec[i] = float32(v)
		norm += v * v
	}

	norm = math.Sqrt(norm)
	if norm == 0 {
		return vec
	}
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec
}
