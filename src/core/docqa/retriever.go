package docqa

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"docqa/src/infrastructure/log"
)

// Retriever returns the top-k chunks for a question ranked by descending
// score. Ties are broken by original document order, earlier chunk first.
type Retriever interface {
	Retrieve(ctx context.Context, question string, k int) ([]ScoredChunk, error)
}

// NewRetriever builds the retriever for one document. It tries to build an
// embedding index over the chunks first; when the embedding service fails it
// degrades to keyword overlap scoring for the remainder of the request. The
// embedding service is not retried mid-request.
func NewRetriever(ctx context.Context, provider LLMProvider, chunks []Chunk) Retriever {
	keyword := NewKeywordRetriever(chunks)

	embedding, err := NewEmbeddingRetriever(ctx, provider, chunks)
	if err != nil {
		log.Error(err, "embedding index unavailable, falling back to keyword retrieval")
		return keyword
	}

	return &fallbackRetriever{primary: embedding, fallback: keyword}
}

// fallbackRetriever delegates to the embedding retriever until it errors,
// then sticks with keyword retrieval for all remaining questions.
type fallbackRetriever struct {
	primary  Retriever
	fallback Retriever

	mu       sync.Mutex
	degraded bool
}

func (r *fallbackRetriever) Retrieve(ctx context.Context, question string, k int) ([]ScoredChunk, error) {
	r.mu.Lock()
	degraded := r.degraded
	r.mu.Unlock()

	if !degraded {
		scored, err := r.primary.Retrieve(ctx, question, k)
		if err == nil {
			return scored, nil
		}
		log.Error(err, "embedding retrieval failed, degrading to keyword retrieval")
		r.mu.Lock()
		r.degraded = true
		r.mu.Unlock()
	}

	return r.fallback.Retrieve(ctx, question, k)
}

// keywordRetriever scores chunks by the number of question tokens they share
// with the chunk, normalized by the question token count. It never fails.
type keywordRetriever struct {
	chunks []Chunk
	words  []map[string]struct{}
}

func NewKeywordRetriever(chunks []Chunk) Retriever {
	words := make([]map[string]struct{}, len(chunks))
	for i, chunk := range chunks {
		words[i] = wordSet(chunk.Content)
	}
	return &keywordRetriever{chunks: chunks, words: words}
}

func (r *keywordRetriever) Retrieve(_ context.Context, question string, k int) ([]ScoredChunk, error) {
	questionWords := wordSet(question)

	scores := make([]float64, len(r.chunks))
	if len(questionWords) > 0 {
		for i, chunkWords := range r.words {
			shared := 0
			for w := range questionWords {
				if _, ok := chunkWords[w]; ok {
					shared++
				}
			}
			scores[i] = float64(shared) / float64(len(questionWords))
		}
	}

	return rankChunks(r.chunks, scores, k), nil
}

func wordSet(text string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		words[w] = struct{}{}
	}
	return words
}

// embeddingRetriever scores chunks by cosine similarity between the question
// embedding and per-chunk embeddings computed once at construction.
type embeddingRetriever struct {
	provider LLMProvider
	chunks   []Chunk
	vectors  [][]float32
}

// NewEmbeddingRetriever embeds every chunk up front so the index is shared by
// all questions of the request. Any embedding failure aborts the build.
func NewEmbeddingRetriever(ctx context.Context, provider LLMProvider, chunks []Chunk) (Retriever, error) {
	vectors := make([][]float32, len(chunks))
	for i, chunk := range chunks {
		vec, err := provider.GetEmbedding(ctx, chunk.Content, EmbeddingTaskDocument)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunk %d: %w", chunk.Index, err)
		}
		vectors[i] = normalize(vec)
	}

	return &embeddingRetriever{provider: provider, chunks: chunks, vectors: vectors}, nil
}

func (r *embeddingRetriever) Retrieve(ctx context.Context, question string, k int) ([]ScoredChunk, error) {
	vec, err := r.provider.GetEmbedding(ctx, question, EmbeddingTaskQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}
	query := normalize(vec)

	scores := make([]float64, len(r.chunks))
	for i, chunkVec := range r.vectors {
		scores[i] = dot(query, chunkVec)
	}

	return rankChunks(r.chunks, scores, k), nil
}

// normalize scales a vector to unit length so similarity reduces to a dot
// product. A zero vector is returned unchanged.
func normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return vec
	}
	scaled := make([]float32, len(vec))
	for i, v := range vec {
		scaled[i] = float32(float64(v) / norm)
	}
	return scaled
}

func dot(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

// rankChunks orders chunks by descending score and returns the first k. The
// stable sort keeps document order for equal scores.
func rankChunks(chunks []Chunk, scores []float64, k int) []ScoredChunk {
	scored := make([]ScoredChunk, len(chunks))
	for i, chunk := range chunks {
		scored[i] = ScoredChunk{Chunk: chunk, Score: scores[i]}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored
}
