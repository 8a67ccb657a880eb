package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"ai-studymate-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalDocumentBoundsLength(t *testing.T) {
	long := strings.Repeat("a", embedding.MaxEmbedChars+500)

	doc := canonicalDocument(long)

	assert.Equal(t, embedding.MaxEmbedChars, utf8.RuneCountInString(doc),
		"persisted document is cut to the embedded length")
}

func TestCanonicalDocumentMatchesEmbeddedText(t *testing.T) {
	// The stored document must be byte-identical to what the generator
	// sends to the provider: trimmed, then truncated.
	raw := "  " + strings.Repeat("x", embedding.MaxEmbedChars+10) + "  "

	doc := canonicalDocument(raw)

	assert.False(t, strings.HasPrefix(doc, " "))
	assert.Equal(t, embedding.MaxEmbedChars, utf8.RuneCountInString(doc))
}

func TestCanonicalDocumentShortTextUntouched(t *testing.T) {
	assert.Equal(t, "short note", canonicalDocument("  short note \n"))
}
