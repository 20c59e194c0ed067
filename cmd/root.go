/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "Document question-answering over PDFs",
	Long: `docqa answers natural-language questions about a PDF document.

It downloads the document, splits the extracted text into overlapping
chunks, retrieves the most relevant chunks per question and asks a
hosted language model to answer strictly from that context.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
