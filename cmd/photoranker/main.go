// Package main provides the entry point for the PhotoRanker analysis service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photoranker",
	Short: "Dating-profile photo analysis service",
	Long:  "PhotoRanker scores and ranks dating-profile photos with a multimodal AI model, via a REST API or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
