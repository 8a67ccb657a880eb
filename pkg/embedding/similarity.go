package embedding

import "math"

// CosineSimilarity computes the cosine similarity between two equal-length
// vectors. Returns a value in [-1, 1], or ErrDimensionMismatch when the
// lengths differ. Zero-magnitude vectors yield 0 to avoid division by zero.
//
// Dot product and both norms are accumulated in a single pass in float64
// so the result stays stable at production dimensions (768+ components).
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := 0; i < len(a); i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
