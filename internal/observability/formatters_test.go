package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d-p-harms/photoranker/internal/types"
)

func TestPrintBatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	batch := &types.BatchResult{
		Results: []types.AnalysisResult{
			{FileName: "photo_1", Outcome: types.OutcomeAnalyzed, Score: 88, Tags: []string{"outdoor", "candid"}},
			{FileName: "photo_2", Outcome: types.OutcomeRejected, Score: 0},
		},
		Metadata: types.BatchMetadata{
			TotalPhotos:      2,
			BatchesProcessed: 1,
			AverageScore:     44,
			CriteriaUsed:     "best",
		},
	}

	p.PrintBatchResult(batch)
	output := buf.String()

	assert.Contains(t, output, "BATCH RESULTS")
	assert.Contains(t, output, "photo_1")
	assert.Contains(t, output, "88")
	assert.Contains(t, output, "outdoor")
	assert.Contains(t, output, "[rejected]")
	assert.Contains(t, output, "44.0")
}

func TestPrintBatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysisResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		FileName:       "photo_3",
		Outcome:        types.OutcomeAnalyzed,
		Score:          81,
		VisualQuality:  85,
		Strengths:      []string{"natural light", "genuine smile"},
		Improvements:   []string{"crop tighter"},
		DatingInsights: types.DatingInsights{ProfileRole: "main photo"},
	}

	p.PrintAnalysisResult(result)
	output := buf.String()

	assert.Contains(t, output, "PHOTO ANALYSIS")
	assert.Contains(t, output, "photo_3")
	assert.Contains(t, output, "natural light")
	assert.Contains(t, output, "main photo")
}
