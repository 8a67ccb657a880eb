package utils

// TruncateRunes cuts text to at most 'limit' runes. Rune-based so
// multi-byte content is never split mid-character.
func TruncateRunes(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}

// Excerpt returns the leading portion of a text, used as the source for
// the "summary" content type when a note has no explicit summary.
func Excerpt(text string, limit int) string {
	return TruncateRunes(text, limit)
}

// SplitText splits a long string into chunks of approximately 'chunkSize'
// characters with an 'overlap' to preserve context at boundaries.
// Character-based; a tokenizer-aware splitter would be an upgrade.
func SplitText(text string, chunkSize int, overlap int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	runes := []rune(text)
	totalLen := len(runes)

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	for i := 0; i < totalLen; i += step {
		end := i + chunkSize
		if end > totalLen {
			end = totalLen
		}

		chunks = append(chunks, string(runes[i:end]))

		if end == totalLen {
			break
		}
	}

	return chunks
}
