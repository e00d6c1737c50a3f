package analysis

import (
	"fmt"

	"github.com/d-p-harms/photoranker/internal/types"
)

// Rejected builds the zero-scored result for an image that failed size
// validation or the content-safety gate. The oracle is never consulted for
// these; the reason travels in the narrative fields.
func Rejected(photoID, fileName, reason string) types.AnalysisResult {
	result := types.AnalysisResult{
		PhotoID:  photoID,
		FileName: fileName,
		Outcome:  types.OutcomeRejected,

		Improvements:         []string{reason},
		NextPhotoSuggestions: []string{"Choose a different photo that meets the size and content guidelines."},
	}
	result.EnsureSlices()
	return result
}

// Fallback builds the degraded result used when the oracle could not be
// reached after retries. All scores are pinned at the fallback value and the
// error is surfaced in the narrative fields so the batch still returns a
// complete, schema-stable record.
func Fallback(photoID, fileName, message string) types.AnalysisResult {
	result := types.AnalysisResult{
		PhotoID:  photoID,
		FileName: fileName,
		Outcome:  types.OutcomeFallback,

		Score:               fallbackScore,
		VisualQuality:       fallbackScore,
		AttractivenessScore: fallbackScore,
		DatingAppealScore:   fallbackScore,
		SwipeWorthiness:     fallbackScore,

		Improvements: []string{fmt.Sprintf("Analysis unavailable: %s", message)},
		NextPhotoSuggestions: []string{
			"Resubmit this photo to get a full analysis.",
		},
	}
	result.EnsureSlices()
	return result
}
