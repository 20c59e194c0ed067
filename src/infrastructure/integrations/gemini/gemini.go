package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"docqa/src/core/docqa"
)

const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultEmbedModel = "gemini-embedding-001"
)

// Low temperature for consistent answers, enough tokens for a short answer.
const (
	generateTemperature = 0.1
	generateMaxTokens   = 200
)

// Client wraps the Gemini API for embeddings and answer generation.
type Client struct {
	client     *genai.Client
	model      string
	embedModel string
}

// NewClient creates a Gemini-backed provider using an API key.
func NewClient(ctx context.Context, apiKey, model, embedModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if embedModel == "" {
		embedModel = DefaultEmbedModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:     client,
		model:      model,
		embedModel: embedModel,
	}, nil
}

// GetEmbedding generates an embedding vector for the given text using the
// retrieval task type matching the text's role.
func (c *Client) GetEmbedding(ctx context.Context, text string, task docqa.EmbeddingTask) ([]float32, error) {
	taskType := "RETRIEVAL_DOCUMENT"
	if task == docqa.EmbeddingTaskQuery {
		taskType = "RETRIEVAL_QUERY"
	}

	cfg := genai.EmbedContentConfig{TaskType: taskType}
	res, err := c.client.Models.EmbedContent(ctx, c.embedModel, genai.Text(text), &cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if res == nil || len(res.Embeddings) == 0 {
		return nil, errors.New("no embedding returned")
	}

	return res.Embeddings[0].Values, nil
}

// Generate produces a text completion for the prompt.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	temp := float32(generateTemperature)
	maxTokens := int32(generateMaxTokens)
	cfg := genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &cfg)
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates returned")
	}

	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
