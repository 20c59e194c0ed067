package docqa

import (
	"context"
	"fmt"
	"time"
)

// Service answers a batch of questions about one remote PDF document.
type Service interface {
	Answer(ctx context.Context, documentURL string, questions []string) ([]string, error)
	CheckHealth(ctx context.Context) HealthStatus
}

// Document is the extracted text of one fetched PDF. It lives for a single
// request and is never cached across requests.
type Document struct {
	Text      string
	SourceURL string
	Size      int64
}

// Chunk is an ordered token window of a document. Offset is the position of
// the first token within the tokenized document.
type Chunk struct {
	Index   int
	Offset  int
	Content string
}

// ScoredChunk pairs a chunk with its similarity score for one question.
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Config holds the read-only pipeline settings. It is built once at startup
// and passed into the service, never mutated afterwards.
type Config struct {
	ChunkSize       int
	ChunkOverlap    int
	TopK            int
	MaxQuestions    int
	RequestTimeout  time.Duration
	AnswerTimeout   time.Duration
	Workers         int
	NotFoundPhrases []string
}

// Validate rejects configurations the chunker would never advance on.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk overlap must not be negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("chunk overlap %d must be smaller than chunk size %d", c.ChunkOverlap, c.ChunkSize)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top-k must be positive, got %d", c.TopK)
	}
	return nil
}

// HealthStatus reports the liveness of the service and its collaborators.
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}
