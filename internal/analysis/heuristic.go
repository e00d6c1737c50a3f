package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/d-p-harms/photoranker/internal/criteria"
	"github.com/d-p-harms/photoranker/internal/types"
)

// scorePattern matches a 1-3 digit number shortly after a score-like word,
// e.g. "score: 85", "Rating of 72/100", "quality is 90".
var scorePattern = regexp.MustCompile(`(?i)(?:score|rating|quality)[^0-9]{0,20}(\d{1,3})`)

// keywordTags maps terms the oracle tends to mention in prose to categorical
// tags, so an unstructured response still yields something useful.
var keywordTags = []struct {
	term string
	tag  string
}{
	{"lighting", "good-lighting"},
	{"confident", "confident"},
	{"natural", "natural"},
	{"smile", "smiling"},
	{"outdoor", "outdoor"},
	{"candid", "candid"},
	{"background", "clean-background"},
}

// heuristic builds a best-effort result from oracle prose when no JSON object
// could be parsed. The score is the average of score-like numbers found in
// the text (clamped, defaulting to 75 when none appear), and keyword presence
// populates minimal tags.
func heuristic(text string, criterion criteria.Criterion, photoID, fileName string) types.AnalysisResult {
	score := extractScore(text)

	result := types.AnalysisResult{
		PhotoID:  photoID,
		FileName: fileName,
		Outcome:  types.OutcomeAnalyzed,

		Score:               score,
		VisualQuality:       score,
		AttractivenessScore: score,
		DatingAppealScore:   score,
		SwipeWorthiness:     score,

		Tags:                 scanKeywords(text),
		Strengths:            []string{placeholderStrength(criterion)},
		Improvements:         []string{"The analysis response was unstructured; detailed feedback is unavailable for this photo."},
		NextPhotoSuggestions: []string{},
	}

	result.EnsureSlices()
	return result
}

// extractScore averages all score-like numbers in the text, clamping each to
// [0,100]. Returns the default score when nothing matches.
func extractScore(text string) int {
	matches := scorePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return defaultScore
	}

	total := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += clampScore(n)
	}
	return clampScore(total / len(matches))
}

// scanKeywords returns tags for the terms present in the text.
func scanKeywords(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, kw := range keywordTags {
		if strings.Contains(lower, kw.term) {
			tags = append(tags, kw.tag)
		}
	}
	return tags
}

// placeholderStrength names what the criterion was looking for, since the
// prose response could not be attributed to specific dimensions.
func placeholderStrength(criterion criteria.Criterion) string {
	switch criteria.Normalize(string(criterion)) {
	case criteria.ProfileOrder:
		return "Photo was assessed for profile placement."
	case criteria.ConversationStarters:
		return "Photo was assessed for conversation hooks."
	case criteria.BroadAppeal:
		return "Photo was assessed for breadth of appeal."
	case criteria.Authenticity:
		return "Photo was assessed for authenticity."
	case criteria.Balanced:
		return "Photo was assessed for overall profile balance."
	default:
		return "Photo was assessed for overall dating-profile suitability."
	}
}
