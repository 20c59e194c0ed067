package cmd

import (
	"github.com/spf13/viper"

	"docqa/src/core/docqa"
)

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for the server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.BindEnv("auth.token", "SECRET_API_KEY")

	// Map environment variables to Viper keys for Gemini
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("gemini.embed_model", "GEMINI_EMBED_MODEL")

	// Map environment variables to Viper keys for Ollama
	viper.BindEnv("ollama.url", "OLLAMA_URL")
	viper.BindEnv("ollama.model", "OLLAMA_MODEL")
	viper.BindEnv("ollama.embed_model", "OLLAMA_EMBED_MODEL")

	// Set default values for the server
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdown_timeout", "5s")

	// Set default values for model providers
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.embed_model", "gemini-embedding-001")
	viper.SetDefault("ollama.url", "http://ollama:11434/api")
	viper.SetDefault("ollama.model", "llama3")
	viper.SetDefault("ollama.embed_model", "nomic-embed-text")

	// Set default values for the QA pipeline
	viper.SetDefault("qa.chunk_size", 400)
	viper.SetDefault("qa.chunk_overlap", 100)
	viper.SetDefault("qa.top_k", 5)
	viper.SetDefault("qa.max_questions", 10)
	viper.SetDefault("qa.request_timeout", "30s")
	viper.SetDefault("qa.answer_timeout", "20s")
	viper.SetDefault("qa.workers", 4)
	viper.SetDefault("fetch.max_bytes", 50*1024*1024)
}

// qaConfigFromViper materializes the pipeline configuration once at startup.
// Components receive this read-only struct instead of reading viper themselves.
func qaConfigFromViper() docqa.Config {
	return docqa.Config{
		ChunkSize:      viper.GetInt("qa.chunk_size"),
		ChunkOverlap:   viper.GetInt("qa.chunk_overlap"),
		TopK:           viper.GetInt("qa.top_k"),
		MaxQuestions:   viper.GetInt("qa.max_questions"),
		RequestTimeout: viper.GetDuration("qa.request_timeout"),
		AnswerTimeout:  viper.GetDuration("qa.answer_timeout"),
		Workers:        viper.GetInt("qa.workers"),
	}
}
