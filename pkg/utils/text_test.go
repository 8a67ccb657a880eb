package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exact limit", "hello", 5, "hello"},
		{"cut at limit", "hello world", 5, "hello"},
		{"zero limit passes through", "hello", 0, "hello"},
		{"multibyte safe", "héllo wörld", 7, "héllo w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateRunes(tt.text, tt.limit))
		})
	}
}

func TestSplitText(t *testing.T) {
	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := SplitText("short", 100, 10)
		assert.Equal(t, []string{"short"}, chunks)
	})

	t.Run("chunks overlap", func(t *testing.T) {
		chunks := SplitText("abcdefghij", 4, 2)
		assert.Equal(t, "abcd", chunks[0])
		assert.Equal(t, "cdef", chunks[1], "next chunk starts inside the previous one")
	})

	t.Run("overlap larger than chunk falls back", func(t *testing.T) {
		chunks := SplitText("abcdefgh", 3, 5)
		assert.NotEmpty(t, chunks)
	})
}
