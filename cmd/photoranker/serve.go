package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/d-p-harms/photoranker/internal/config"
	"github.com/d-p-harms/photoranker/internal/oracle"
	"github.com/d-p-harms/photoranker/internal/pipeline"
	"github.com/d-p-harms/photoranker/internal/prompts"
	"github.com/d-p-harms/photoranker/internal/safety"
	"github.com/d-p-harms/photoranker/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the photo analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides PHOTORANKER_LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	analyzer, cleanup, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return server.New(cfg, analyzer).Start()
}

// buildAnalyzer wires the pipeline to the Gemini oracle and, when credentials
// permit, the Vision safety classifier.
func buildAnalyzer(ctx context.Context, cfg config.Config) (*pipeline.Analyzer, func(), error) {
	if err := prompts.Verify(); err != nil {
		return nil, nil, err
	}

	client, err := oracle.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.OracleTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var classifier safety.Classifier
	classifier, err = safety.NewVisionClassifier(ctx)
	if err != nil {
		log.Printf("Warning: Vision classifier unavailable, content checks disabled: %v", err)
		classifier = safety.Permissive()
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("Warning: closing Gemini client: %v", err)
		}
		if err := classifier.Close(); err != nil {
			log.Printf("Warning: closing safety classifier: %v", err)
		}
	}

	return pipeline.NewAnalyzer(cfg, client, classifier), cleanup, nil
}
