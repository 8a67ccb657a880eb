package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticProviderDeterminism(t *testing.T) {
	p := NewSyntheticProvider(64)

	v1, err := p.Generate(context.Background(), "photosynthesis basics", TaskRetrievalDocument)
	require.NoError(t, err)
	v2, err := p.Generate(context.Background(), "photosynthesis basics", TaskRetrievalDocument)
	require.NoError(t, err)

	assert.Equal(t, v1, v2, "same input must map to the same vector")

	v3, err := p.Generate(context.Background(), "cell respiration", TaskRetrievalDocument)
	require.NoError(t, err)
	assert.NotEqual(t, v1, v3, "different inputs should diverge")
}

func TestSyntheticProviderDimensionAndNorm(t *testing.T) {
	p := NewSyntheticProvider(128)

	vec, err := p.Generate(context.Background(), "any text", TaskRetrievalQuery)
	require.NoError(t, err)
	require.Len(t, vec, 128)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-4, "vectors are unit-norm")
}

func TestSyntheticProviderBatch(t *testing.T) {
	p := NewSyntheticProvider(32)

	vectors, err := p.GenerateBatch(context.Background(), []string{"a", "b", "a"}, TaskRetrievalDocument)
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, vectors[0], vectors[2], "batch entries are independent of position")
	assert.NotEqual(t, vectors[0], vectors[1])
}
