/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"docqa/src/core/docqa"
	"docqa/src/infrastructure/fetchctrl"
	"docqa/src/infrastructure/pdfctrl"
)

var (
	askURL       string
	askQuestions []string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer questions about a PDF from the command line",
	Long: `The ask command runs the full QA pipeline once: it downloads the PDF,
chunks the extracted text, retrieves the most relevant chunks per question
and prints the model's answer for each question.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		provider, err := buildProvider(ctx)
		if err != nil {
			fmt.Printf("Error creating model provider: %v\n", err)
			return
		}

		cfg := qaConfigFromViper()
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Invalid configuration: %v\n", err)
			return
		}

		fetcher := fetchctrl.NewPDFFetcher(
			&http.Client{Timeout: 30 * time.Second},
			viper.GetInt64("fetch.max_bytes"),
		)

		fmt.Printf("Downloading %s\n", askURL)
		data, err := fetcher.Fetch(ctx, askURL)
		if err != nil {
			fmt.Printf("Error downloading document: %v\n", err)
			return
		}

		text, err := pdfctrl.NewExtractor().ExtractText(data)
		if err != nil {
			fmt.Printf("Error extracting text: %v\n", err)
			return
		}

		chunks, err := docqa.SplitText(text, cfg.ChunkSize, cfg.ChunkOverlap)
		if err != nil {
			fmt.Printf("Error chunking text: %v\n", err)
			return
		}
		fmt.Printf("Document ready: %d bytes, %d chunks\n", len(data), len(chunks))

		retriever := docqa.NewRetriever(ctx, provider, chunks)
		normalizer := docqa.NewNormalizer(cfg.NotFoundPhrases)

		bar := progressbar.Default(int64(len(askQuestions)), "answering")
		answers := make([]string, len(askQuestions))

		for i, question := range askQuestions {
			scored, err := retriever.Retrieve(ctx, question, cfg.TopK)
			if err != nil {
				bar.Add(1)
				continue
			}

			genCtx, cancel := context.WithTimeout(ctx, cfg.AnswerTimeout)
			raw, err := provider.Generate(genCtx, docqa.BuildPrompt(question, scored))
			cancel()
			if err != nil {
				bar.Add(1)
				continue
			}

			answers[i] = normalizer.Normalize(raw)
			bar.Add(1)
		}

		for i, question := range askQuestions {
			fmt.Println("-------------------")
			fmt.Printf("Q%d: %s\n", i+1, question)
			if answers[i] == "" {
				fmt.Println("A: (not found in document)")
				continue
			}
			fmt.Printf("A: %s\n", answers[i])
		}
		fmt.Println("-------------------")
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVarP(&askURL, "url", "u", "", "Public URL of the PDF document (required)")
	askCmd.Flags().StringArrayVarP(&askQuestions, "question", "q", nil, "Question to answer, repeatable (required)")

	askCmd.MarkFlagRequired("url")
	askCmd.MarkFlagRequired("question")
}
