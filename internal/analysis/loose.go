package analysis

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The loose types deserialize oracle JSON permissively: every field is
// optional and a wrong-typed field decodes to its zero value instead of
// failing the whole document. The normalization step applies the default and
// clamp rules afterwards, keeping the fallback chain auditable.

// looseNumber accepts a JSON number or a numeric string; anything else is
// recorded as absent.
type looseNumber struct {
	value float64
	ok    bool
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value, n.ok = f, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.value, n.ok = f, true
		}
	}
	return nil
}

// looseStrings keeps the string elements of a JSON array; a non-array value
// decodes as absent.
type looseStrings []string

func (s *looseStrings) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for _, v := range raw {
		if str, ok := v.(string); ok {
			*s = append(*s, str)
		}
	}
	return nil
}

// looseString accepts a JSON string; anything else decodes as empty.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
	}
	return nil
}

// looseTechnical tolerates a missing or wrong-typed technicalFeedback object.
type looseTechnical struct {
	Lighting    looseString `json:"lighting"`
	Composition looseString `json:"composition"`
	Styling     looseString `json:"styling"`
}

func (t *looseTechnical) UnmarshalJSON(data []byte) error {
	type alias looseTechnical
	var a alias
	if err := json.Unmarshal(data, &a); err == nil {
		*t = looseTechnical(a)
	}
	return nil
}

// looseInsights tolerates a missing or wrong-typed datingInsights object.
type looseInsights struct {
	PersonalityProjected looseString `json:"personalityProjected"`
	DemographicAppeal    looseString `json:"demographicAppeal"`
	ProfileRole          looseString `json:"profileRole"`
}

func (i *looseInsights) UnmarshalJSON(data []byte) error {
	type alias looseInsights
	var a alias
	if err := json.Unmarshal(data, &a); err == nil {
		*i = looseInsights(a)
	}
	return nil
}

// looseResponse mirrors the full response schema with every field optional.
type looseResponse struct {
	Score               looseNumber `json:"score"`
	VisualQuality       looseNumber `json:"visualQuality"`
	AttractivenessScore looseNumber `json:"attractivenessScore"`
	DatingAppealScore   looseNumber `json:"datingAppealScore"`
	SwipeWorthiness     looseNumber `json:"swipeWorthiness"`

	Tags                 looseStrings `json:"tags"`
	Strengths            looseStrings `json:"strengths"`
	Improvements         looseStrings `json:"improvements"`
	NextPhotoSuggestions looseStrings `json:"nextPhotoSuggestions"`

	TechnicalFeedback looseTechnical `json:"technicalFeedback"`
	DatingInsights    looseInsights  `json:"datingInsights"`

	Position             looseNumber  `json:"position"`
	ConversationElements looseStrings `json:"conversationElements"`
	AppealBreadth        looseString  `json:"appealBreadth"`
	AuthenticityLevel    looseString  `json:"authenticityLevel"`
}
