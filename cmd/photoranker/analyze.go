package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d-p-harms/photoranker/internal/config"
	"github.com/d-p-harms/photoranker/internal/observability"
	"github.com/d-p-harms/photoranker/internal/pipeline"
)

var (
	analyzeCriterion string
	analyzeJSON      bool
	analyzeVerbose   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [photo files...]",
	Short: "Analyze photos from local files",
	Long:  `Score and rank local photo files without starting the server. Results are printed ranked best-first.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCriterion, "criterion", "best", "Analysis criterion (best, balanced, profile_order, conversation_starters, broad_appeal, authenticity)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print raw JSON instead of formatted output")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print per-photo detail")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	photos := make([][]byte, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read photo %s: %w", path, err)
		}
		photos = append(photos, data)
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

	fmt.Printf("Analyzing %d photo(s) with criterion %q...\n", len(photos), analyzeCriterion)
	batch, err := analyzer.Analyze(ctx, pipeline.Request{
		Photos:    photos,
		Criterion: analyzeCriterion,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(batch)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchResult(batch)
	if analyzeVerbose {
		for i := range batch.Results {
			printer.PrintAnalysisResult(&batch.Results[i])
		}
	}
	return nil
}
