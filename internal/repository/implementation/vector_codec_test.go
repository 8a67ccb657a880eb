package implementation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCodecRoundTrip(t *testing.T) {
	original := []float32{0.25, -1.5, 3}

	encoded, err := encodeVectorJSON(original)
	require.NoError(t, err)

	decoded, err := decodeVector(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeVectorPgvectorLiteral(t *testing.T) {
	// pgvector's ::text output has no spaces after commas.
	decoded, err := decodeVector("[0.1,0.2,0.3]")
	require.NoError(t, err)
	assert.Len(t, decoded, 3)
	assert.InDelta(t, 0.2, float64(decoded[1]), 1e-6)
}

func TestDecodeVectorJsonbLiteral(t *testing.T) {
	// jsonb text output puts a space after commas.
	decoded, err := decodeVector("[0.1, 0.2, 0.3]")
	require.NoError(t, err)
	assert.Len(t, decoded, 3)
}

func TestDecodeVectorBadInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty string", ""},
		{"whitespace", "   "},
		{"not an array", `{"a":1}`},
		{"non-numeric element", `[1, "x", 3]`},
		{"empty array", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeVector(tt.raw)
			assert.ErrorIs(t, err, ErrVectorDecode)
		})
	}
}
