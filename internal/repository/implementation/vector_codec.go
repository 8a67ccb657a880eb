package implementation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrVectorDecode marks a stored vector that cannot be parsed back into
// floats. Row-level: search skips the row, it never aborts the query.
var ErrVectorDecode = errors.New("embedding store: stored vector failed to decode")

// encodeVectorJSON serializes a vector as an ordered JSON numeric array,
// the wire form of the generic-structured storage mode.
func encodeVectorJSON(vec []float32) (string, error) {
	raw, err := json.Marshal(vec)
	if err != nil {
		return "", fmt.Errorf("encode vector: %w", err)
	}
	return string(raw), nil
}

// decodeVector parses a stored vector from its text form. Both storage
// modes serialize to a bracketed comma-separated list ("[0.1,0.2]" for
// pgvector, "[0.1, 0.2]" for jsonb), so a single JSON decode covers both.
func decodeVector(raw string) ([]float32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty value", ErrVectorDecode)
	}

	var vec []float32
	if err := json.Unmarshal([]byte(raw), &vec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVectorDecode, err)
	}
	if len(vec) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrVectorDecode)
	}
	return vec, nil
}
