// Package pipeline provides the high-level orchestration for batch photo
// analysis: validation, transcoding, the safety gate, staggered oracle calls,
// and result ranking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/d-p-harms/photoranker/internal/analysis"
	"github.com/d-p-harms/photoranker/internal/config"
	"github.com/d-p-harms/photoranker/internal/criteria"
	"github.com/d-p-harms/photoranker/internal/imaging"
	"github.com/d-p-harms/photoranker/internal/oracle"
	"github.com/d-p-harms/photoranker/internal/prompts"
	"github.com/d-p-harms/photoranker/internal/safety"
	"github.com/d-p-harms/photoranker/internal/types"
)

// Request is one batch of photos to analyze under a single criterion.
type Request struct {
	Photos    [][]byte
	Criterion string
}

// Analyzer runs analysis batches against the configured collaborators.
type Analyzer struct {
	cfg        config.Config
	oracle     oracle.Client
	classifier safety.Classifier
}

// NewAnalyzer wires the pipeline to its oracle and safety classifier.
func NewAnalyzer(cfg config.Config, client oracle.Client, classifier safety.Classifier) *Analyzer {
	return &Analyzer{cfg: cfg, oracle: client, classifier: classifier}
}

// Analyze processes the batch and returns ranked results. Individual photo
// failures never fail the batch: size and content rejections score zero,
// oracle outages degrade to fallback results. Only an empty or oversized
// batch, or context cancellation, returns an error.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*types.BatchResult, error) {
	if len(req.Photos) == 0 {
		return nil, &EmptyBatchError{}
	}
	if len(req.Photos) > a.cfg.MaxPhotos {
		return nil, &BatchSizeError{Count: len(req.Photos), Max: a.cfg.MaxPhotos}
	}

	criterion := criteria.Normalize(req.Criterion)
	prompt := prompts.Build(criterion)

	results := make([]types.AnalysisResult, len(req.Photos))
	groups := 0

	for start := 0; start < len(req.Photos); start += a.cfg.GroupSize {
		if groups > 0 {
			if err := wait(ctx, a.cfg.GroupPause); err != nil {
				return nil, err
			}
		}
		groups++

		end := start + a.cfg.GroupSize
		if end > len(req.Photos) {
			end = len(req.Photos)
		}

		g, gCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			index := i
			offset := time.Duration(i-start) * a.cfg.PhotoStagger
			g.Go(func() error {
				if err := wait(gCtx, offset); err != nil {
					return err
				}
				results[index] = a.analyzeOne(gCtx, req.Photos[index], criterion, prompt, index)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	average := averageScore(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > a.cfg.ResultCap {
		results = results[:a.cfg.ResultCap]
	}

	return &types.BatchResult{
		Results: results,
		Metadata: types.BatchMetadata{
			TotalPhotos:      len(req.Photos),
			BatchesProcessed: groups,
			AverageScore:     average,
			CriteriaUsed:     string(criterion),
		},
	}, nil
}

// analyzeOne carries a single photo through transcoding, the safety gate, and
// the oracle. It always produces a result; a panic anywhere in the chain is
// contained and degraded to a fallback result.
func (a *Analyzer) analyzeOne(ctx context.Context, photo []byte, criterion criteria.Criterion, prompt string, index int) (result types.AnalysisResult) {
	photoID := uuid.NewString()
	fileName := fmt.Sprintf("photo_%d", index+1)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: analysis of %s panicked: %v", fileName, r)
			result = analysis.Fallback(photoID, fileName, fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	prepared, err := imaging.Transcode(photo, a.transcodeOptions())
	if err != nil {
		return analysis.Rejected(photoID, fileName, rejectionReason(err))
	}

	verdict := safety.Gate(ctx, a.classifier, prepared.Bytes)
	if !verdict.Safe {
		return analysis.Rejected(photoID, fileName, verdict.Reason)
	}

	raw, err := oracle.Retry(ctx, a.cfg.MaxAttempts, oracle.ScaledBackoff(a.cfg.BackoffBase), func(ctx context.Context) (string, error) {
		return a.oracle.AnalyzePhoto(ctx, prompt, prepared.Bytes)
	})
	if err != nil {
		log.Printf("Warning: oracle unavailable for %s: %v", fileName, err)
		return analysis.Fallback(photoID, fileName, err.Error())
	}

	return analysis.Normalize(raw, criterion, photoID, fileName)
}

func (a *Analyzer) transcodeOptions() imaging.Options {
	opts := imaging.DefaultOptions()
	opts.MinDimension = a.cfg.MinDimension
	opts.MaxDimension = a.cfg.DownscaleThreshold
	opts.TargetDimension = a.cfg.DownscaleTarget
	opts.MaxEncodedBytes = int(a.cfg.MaxEncodedBytes)
	return opts
}

// rejectionReason maps a transcoding failure to the user-facing reason string.
func rejectionReason(err error) string {
	var tooSmall *imaging.TooSmallError
	var tooLarge *imaging.TooLargeError
	switch {
	case errors.As(err, &tooSmall):
		return fmt.Sprintf("Image resolution is too low (%dx%d); the longer side must be at least %dpx.",
			tooSmall.Width, tooSmall.Height, tooSmall.Min)
	case errors.As(err, &tooLarge):
		return "Image is too large to process even after compression."
	default:
		return "Image could not be decoded; please upload a valid JPEG, PNG, GIF, or WebP file."
	}
}

// averageScore is the mean over every result, rejected and fallback included.
func averageScore(results []types.AnalysisResult) float64 {
	if len(results) == 0 {
		return 0
	}
	total := 0
	for _, r := range results {
		total += r.Score
	}
	return float64(total) / float64(len(results))
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
