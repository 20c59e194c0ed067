package docqa

import "context"

// EmbeddingTask tells the embedding model which side of a retrieval pair the
// text belongs to.
type EmbeddingTask string

const (
	EmbeddingTaskDocument EmbeddingTask = "document"
	EmbeddingTaskQuery    EmbeddingTask = "query"
)

// LLMProvider defines operations for language model interactions
type LLMProvider interface {
	// GetEmbedding generates an embedding vector for the given input text
	GetEmbedding(ctx context.Context, text string, task EmbeddingTask) ([]float32, error)
	// Generate generates a text completion for the given prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fetcher retrieves the raw bytes of a remote document
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor converts document bytes into plain text
type Extractor interface {
	ExtractText(data []byte) (string, error)
}
