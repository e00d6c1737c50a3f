// Package types provides type definitions for the photo analysis results
// returned by the pipeline and served to clients.
package types

// Outcome tags how an AnalysisResult was produced. A rejected result and a
// fallback result carry the same fields as a normal one but are semantically
// distinct: rejection is a policy/validation decision made before the oracle
// was consulted, fallback means the oracle could not be reached or understood.
type Outcome string

// Outcome values for AnalysisResult.
const (
	// OutcomeAnalyzed marks a result produced from a real oracle response.
	OutcomeAnalyzed Outcome = "analyzed"
	// OutcomeRejected marks a zero-scored result for an image that failed
	// size validation or the content-safety gate.
	OutcomeRejected Outcome = "rejected"
	// OutcomeFallback marks a degraded result produced after the oracle
	// call failed despite retries.
	OutcomeFallback Outcome = "fallback"
)

// AnalysisResult is the per-photo output record. Every field required by the
// client contract is always populated: scores are clamped to [0,100], the
// narrative slices are never nil, and the nested feedback objects are always
// present so callers can read through one level without nil checks.
type AnalysisResult struct {
	PhotoID  string  `json:"photoId"`
	FileName string  `json:"fileName"`
	Outcome  Outcome `json:"outcome"`

	// Score is the primary 0-100 assessment. The secondary scores default
	// to the primary score when the oracle omits them.
	Score               int `json:"score"`
	VisualQuality       int `json:"visualQuality"`
	AttractivenessScore int `json:"attractivenessScore"`
	DatingAppealScore   int `json:"datingAppealScore"`
	SwipeWorthiness     int `json:"swipeWorthiness"`

	Tags                 []string `json:"tags"`
	Strengths            []string `json:"strengths"`
	Improvements         []string `json:"improvements"`
	NextPhotoSuggestions []string `json:"nextPhotoSuggestions"`

	TechnicalFeedback TechnicalFeedback `json:"technicalFeedback"`
	DatingInsights    DatingInsights    `json:"datingInsights"`

	// Criterion-specific extensions. Populated only when the requesting
	// criterion makes them meaningful, omitted otherwise.
	Position             *int     `json:"position,omitempty"`
	ConversationElements []string `json:"conversationElements,omitempty"`
	AppealBreadth        string   `json:"appealBreadth,omitempty"`
	AuthenticityLevel    string   `json:"authenticityLevel,omitempty"`
}

// TechnicalFeedback holds photographic craft commentary.
type TechnicalFeedback struct {
	Lighting    string `json:"lighting"`
	Composition string `json:"composition"`
	Styling     string `json:"styling"`
}

// DatingInsights holds dating-context commentary.
type DatingInsights struct {
	PersonalityProjected string `json:"personalityProjected"`
	DemographicAppeal    string `json:"demographicAppeal"`
	ProfileRole          string `json:"profileRole"`
}

// BatchMetadata summarizes a completed batch.
type BatchMetadata struct {
	TotalPhotos      int     `json:"totalPhotos"`
	BatchesProcessed int     `json:"batchesProcessed"`
	AverageScore     float64 `json:"averageScore"`
	CriteriaUsed     string  `json:"criteriaUsed"`
}

// BatchResult is the envelope returned for one analysis request. Results are
// sorted by descending score and truncated to the result cap; AverageScore is
// computed over every produced result, including any truncated away.
type BatchResult struct {
	Results  []AnalysisResult `json:"results"`
	Metadata BatchMetadata    `json:"metadata"`
}

// EnsureSlices replaces nil narrative slices with empty ones so the JSON
// encoding always emits arrays, never null.
func (r *AnalysisResult) EnsureSlices() {
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Improvements == nil {
		r.Improvements = []string{}
	}
	if r.NextPhotoSuggestions == nil {
		r.NextPhotoSuggestions = []string{}
	}
}
