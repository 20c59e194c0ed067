package docqa

import (
	"context"
	"fmt"
	"time"

	"github.com/panjf2000/ants/v2"

	"docqa/src/infrastructure/log"
)

// QAService runs the fetch, extract, chunk, retrieve, generate pipeline for
// one request at a time. It holds no per-request state; the worker pool is
// the only long-lived resource.
type QAService struct {
	cfg        Config
	fetcher    Fetcher
	extractor  Extractor
	provider   LLMProvider
	normalizer *Normalizer
	pool       *ants.Pool
}

func NewQAService(cfg Config, fetcher Fetcher, extractor Extractor, provider LLMProvider) (*QAService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &QAService{
		cfg:        cfg,
		fetcher:    fetcher,
		extractor:  extractor,
		provider:   provider,
		normalizer: NewNormalizer(cfg.NotFoundPhrases),
		pool:       pool,
	}, nil
}

// Close releases the worker pool.
func (s *QAService) Close() {
	s.pool.Release()
}

// Answer runs the full pipeline. The returned slice always has one entry per
// question in input order; questions that could not be answered within the
// request deadline hold the empty-string sentinel. Only fetch and extraction
// failures abort the request.
func (s *QAService) Answer(ctx context.Context, documentURL string, questions []string) ([]string, error) {
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	data, err := s.fetcher.Fetch(ctx, documentURL)
	if err != nil {
		return nil, &FetchError{URL: documentURL, Err: err}
	}

	text, err := s.extractor.ExtractText(data)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	doc := Document{Text: text, SourceURL: documentURL, Size: int64(len(data))}

	chunks, err := SplitText(doc.Text, s.cfg.ChunkSize, s.cfg.ChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("failed to chunk document: %w", err)
	}
	log.Info("document prepared", "url", doc.SourceURL, "bytes", doc.Size, "chunks", len(chunks))

	retriever := NewRetriever(ctx, s.provider, chunks)

	return s.answerAll(ctx, retriever, questions), nil
}

type indexedAnswer struct {
	index  int
	answer string
}

// answerAll dispatches one task per question to the bounded worker pool and
// collects results by position. The deadline applies to the collection step:
// when the request context expires, unfilled slots keep the sentinel.
func (s *QAService) answerAll(ctx context.Context, retriever Retriever, questions []string) []string {
	answers := make([]string, len(questions))
	results := make(chan indexedAnswer, len(questions))

	pending := 0
	for i, question := range questions {
		i, question := i, question
		err := s.pool.Submit(func() {
			results <- indexedAnswer{index: i, answer: s.answerOne(ctx, retriever, question)}
		})
		if err != nil {
			log.Error(err, "failed to submit question task", "index", i)
			continue
		}
		pending++
	}

	for pending > 0 {
		select {
		case res := <-results:
			answers[res.index] = res.answer
			pending--
		case <-ctx.Done():
			log.Info("request deadline reached with unanswered questions", "remaining", pending)
			return answers
		}
	}
	return answers
}

// answerOne resolves a single question. Failures produce the sentinel, never
// an error: a broken question must not take down the batch.
func (s *QAService) answerOne(ctx context.Context, retriever Retriever, question string) string {
	scored, err := retriever.Retrieve(ctx, question, s.cfg.TopK)
	if err != nil {
		log.Error(err, "retrieval failed", "question", question)
		return ""
	}

	prompt := BuildPrompt(question, scored)

	genCtx := ctx
	if s.cfg.AnswerTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.cfg.AnswerTimeout)
		defer cancel()
	}

	raw, err := s.provider.Generate(genCtx, prompt)
	if err != nil {
		log.Error(err, "generation failed", "question", question)
		return ""
	}

	return s.normalizer.Normalize(raw)
}

// CheckHealth probes the generation provider with a short prompt.
func (s *QAService) CheckHealth(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status: "healthy",
		Components: map[string]string{
			"fetcher":   "up",
			"extractor": "up",
			"generator": "up",
		},
	}

	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.provider.Generate(probeCtx, "Say 'OK' if you can read this."); err != nil {
		log.Error(err, "generator health probe failed")
		status.Components["generator"] = "down"
		status.Status = "unhealthy"
	}

	return status
}
