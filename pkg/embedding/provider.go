package embedding

import "context"

// Task types understood by embedding providers. Providers that don't
// distinguish tasks ignore them.
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider defines the interface for generating text embeddings.
type EmbeddingProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate returns one embedding vector for the given text.
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)

	// GenerateBatch returns one embedding vector per input text, in input
	// order. A partial response is a contract violation, not a partial
	// success.
	GenerateBatch(ctx context.Context, texts []string, taskType string) ([][]float32, error)
}
