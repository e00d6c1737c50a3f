// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/d-p-harms/photoranker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBatchResult outputs a ranked summary of a finished analysis batch.
func (p *Printer) PrintBatchResult(batch *types.BatchResult) {
	if batch == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Photos:    %d\n", batch.Metadata.TotalPhotos))
	sb.WriteString(fmt.Sprintf("Groups:    %d\n", batch.Metadata.BatchesProcessed))
	sb.WriteString(fmt.Sprintf("Criterion: %s\n", batch.Metadata.CriteriaUsed))
	sb.WriteString(fmt.Sprintf("Average:   %.1f\n", batch.Metadata.AverageScore))
	sb.WriteString("\n")

	for i, r := range batch.Results {
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, r.FileName))
		switch r.Outcome {
		case types.OutcomeRejected:
			sb.WriteString("  [rejected]")
		case types.OutcomeFallback:
			sb.WriteString("  [fallback]")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %d\n", r.Score))
		if len(r.Tags) > 0 {
			tags := strings.Join(r.Tags, ", ")
			if len(tags) > 40 {
				tags = tags[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Tags:  %s\n", tags))
		}
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnalysisResult outputs the full detail for a single photo.
func (p *Printer) PrintAnalysisResult(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Photo:   %s\n", result.FileName))
	sb.WriteString(fmt.Sprintf("Outcome: %s\n", result.Outcome))
	sb.WriteString(fmt.Sprintf("Score:   %d  (quality %d, appeal %d, swipe %d)\n",
		result.Score, result.VisualQuality, result.DatingAppealScore, result.SwipeWorthiness))
	sb.WriteString("\n")

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(title + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeList("Strengths", result.Strengths)
	writeList("Improvements", result.Improvements)
	writeList("Next photo ideas", result.NextPhotoSuggestions)

	if result.DatingInsights.ProfileRole != "" {
		sb.WriteString(fmt.Sprintf("Suggested role: %s\n", result.DatingInsights.ProfileRole))
	}

	p.printBox("PHOTO ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
