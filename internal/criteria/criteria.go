// Package criteria defines the closed set of evaluation criteria a caller can
// request and the fallback behavior for unrecognized values.
package criteria

// Criterion selects which prompt variant and result extensions are used for
// a batch.
type Criterion string

// Supported criteria. Best is the comprehensive default.
const (
	Best                 Criterion = "best"
	Balanced             Criterion = "balanced"
	ProfileOrder         Criterion = "profile_order"
	ConversationStarters Criterion = "conversation_starters"
	BroadAppeal          Criterion = "broad_appeal"
	Authenticity         Criterion = "authenticity"
)

var supported = []Criterion{
	Best,
	Balanced,
	ProfileOrder,
	ConversationStarters,
	BroadAppeal,
	Authenticity,
}

// Normalize maps a raw criterion string to a supported Criterion. Unknown or
// empty values fall back to Best; this is deliberate, never an error.
func Normalize(raw string) Criterion {
	c := Criterion(raw)
	for _, s := range supported {
		if c == s {
			return c
		}
	}
	return Best
}

// IsSupported reports whether raw names a criterion without fallback.
func IsSupported(raw string) bool {
	c := Criterion(raw)
	for _, s := range supported {
		if c == s {
			return true
		}
	}
	return false
}

// Supported returns the criterion names for the capability descriptor.
func Supported() []string {
	names := make([]string, len(supported))
	for i, c := range supported {
		names[i] = string(c)
	}
	return names
}
