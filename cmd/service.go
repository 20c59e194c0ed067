package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/viper"

	"docqa/src/core/docqa"
	"docqa/src/infrastructure/fetchctrl"
	"docqa/src/infrastructure/integrations/gemini"
	"docqa/src/infrastructure/integrations/ollama"
	"docqa/src/infrastructure/log"
	"docqa/src/infrastructure/pdfctrl"
)

// buildProvider selects the model provider: Gemini when an API key is
// configured, otherwise a local Ollama instance.
func buildProvider(ctx context.Context) (docqa.LLMProvider, error) {
	if apiKey := viper.GetString("gemini.api_key"); apiKey != "" {
		return gemini.NewClient(
			ctx,
			apiKey,
			viper.GetString("gemini.model"),
			viper.GetString("gemini.embed_model"),
		)
	}

	log.Info("no Gemini API key configured, using Ollama", "url", viper.GetString("ollama.url"))
	return ollama.NewClient(
		viper.GetString("ollama.url"),
		&http.Client{Timeout: 60 * time.Second},
		viper.GetString("ollama.model"),
		viper.GetString("ollama.embed_model"),
	), nil
}

func buildQAService(ctx context.Context) (*docqa.QAService, error) {
	provider, err := buildProvider(ctx)
	if err != nil {
		return nil, err
	}

	fetcher := fetchctrl.NewPDFFetcher(
		&http.Client{Timeout: 30 * time.Second},
		viper.GetInt64("fetch.max_bytes"),
	)

	return docqa.NewQAService(qaConfigFromViper(), fetcher, pdfctrl.NewExtractor(), provider)
}
