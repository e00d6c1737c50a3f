package analysis

import (
	"encoding/json"
	"log"
	"math"
	"strings"

	"github.com/d-p-harms/photoranker/internal/criteria"
	"github.com/d-p-harms/photoranker/internal/schemas"
	"github.com/d-p-harms/photoranker/internal/types"
)

const (
	// defaultScore stands in when a response carries no usable score.
	defaultScore = 75
	// fallbackScore marks results produced without any oracle response.
	fallbackScore = 70
)

// Normalize converts raw oracle text into a fully-populated AnalysisResult.
// It never fails: a parseable JSON object takes the schema-checked strict
// path, and anything else falls back to heuristic text scanning.
func Normalize(raw string, criterion criteria.Criterion, photoID, fileName string) types.AnalysisResult {
	jsonText, found := ExtractJSONObject(raw)
	if !found {
		return heuristic(raw, criterion, photoID, fileName)
	}

	if err := schemas.ValidateAnalysisResponse(jsonText); err != nil {
		// Deviations are expected from time to time; the loose parse below
		// absorbs them. Logged so prompt drift is visible in operation.
		log.Printf("Oracle response for %s deviates from schema: %v", photoID, err)
	}

	var loose looseResponse
	if err := json.Unmarshal([]byte(jsonText), &loose); err != nil {
		return heuristic(raw, criterion, photoID, fileName)
	}

	return fromLoose(loose, criterion, photoID, fileName)
}

// fromLoose applies the documented fallback chain: the primary score defaults
// to 75, each secondary score defaults to the primary, every score is clamped
// to [0,100], arrays default to empty, and nested objects are always present.
func fromLoose(loose looseResponse, criterion criteria.Criterion, photoID, fileName string) types.AnalysisResult {
	score := clampScore(scoreOr(loose.Score, defaultScore))

	result := types.AnalysisResult{
		PhotoID:  photoID,
		FileName: fileName,
		Outcome:  types.OutcomeAnalyzed,

		Score:               score,
		VisualQuality:       clampScore(scoreOr(loose.VisualQuality, score)),
		AttractivenessScore: clampScore(scoreOr(loose.AttractivenessScore, score)),
		DatingAppealScore:   clampScore(scoreOr(loose.DatingAppealScore, score)),
		SwipeWorthiness:     clampScore(scoreOr(loose.SwipeWorthiness, score)),

		Tags:                 loose.Tags,
		Strengths:            loose.Strengths,
		Improvements:         loose.Improvements,
		NextPhotoSuggestions: loose.NextPhotoSuggestions,

		TechnicalFeedback: types.TechnicalFeedback{
			Lighting:    string(loose.TechnicalFeedback.Lighting),
			Composition: string(loose.TechnicalFeedback.Composition),
			Styling:     string(loose.TechnicalFeedback.Styling),
		},
		DatingInsights: types.DatingInsights{
			PersonalityProjected: string(loose.DatingInsights.PersonalityProjected),
			DemographicAppeal:    string(loose.DatingInsights.DemographicAppeal),
			ProfileRole:          string(loose.DatingInsights.ProfileRole),
		},
	}

	applyCriterionExtensions(&result, loose, criterion)
	result.EnsureSlices()
	return result
}

// applyCriterionExtensions populates the extension fields relevant to the
// requesting criterion; other criteria leave them absent.
func applyCriterionExtensions(result *types.AnalysisResult, loose looseResponse, criterion criteria.Criterion) {
	switch criteria.Normalize(string(criterion)) {
	case criteria.ProfileOrder:
		if loose.Position.ok {
			pos := int(math.Round(loose.Position.value))
			if pos < 1 {
				pos = 1
			}
			result.Position = &pos
		}
	case criteria.ConversationStarters:
		elements := []string(loose.ConversationElements)
		if elements == nil {
			elements = []string{}
		}
		result.ConversationElements = elements
	case criteria.BroadAppeal:
		result.AppealBreadth = normalizeLevel(string(loose.AppealBreadth), "niche", "moderate", "wide")
	case criteria.Authenticity:
		result.AuthenticityLevel = normalizeLevel(string(loose.AuthenticityLevel), "low", "medium", "high")
	}
}

// normalizeLevel lowercases a categorical level and keeps it only when it is
// one of the allowed values; the middle value is the default.
func normalizeLevel(raw string, allowed ...string) string {
	level := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if level == a {
			return level
		}
	}
	return allowed[len(allowed)/2]
}

// scoreOr reads a loose number, falling back when it is absent.
func scoreOr(n looseNumber, fallback int) int {
	if !n.ok {
		return fallback
	}
	return int(math.Round(n.value))
}

// clampScore bounds a score to [0,100].
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
