package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "no fence",
			input:    `{"score": 80}`,
			expected: `{"score": 80}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  ```json\n{\"score\": 80}\n```  ",
			expected: `{"score": 80}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantFound bool
	}{
		{
			name:      "bare object",
			input:     `{"score": 90}`,
			expected:  `{"score": 90}`,
			wantFound: true,
		},
		{
			name:      "object surrounded by prose",
			input:     "Here is my assessment:\n{\"score\": 85, \"tags\": []}\nHope that helps!",
			expected:  `{"score": 85, "tags": []}`,
			wantFound: true,
		},
		{
			name:      "nested objects",
			input:     `{"score": 70, "technicalFeedback": {"lighting": "soft"}}`,
			expected:  `{"score": 70, "technicalFeedback": {"lighting": "soft"}}`,
			wantFound: true,
		},
		{
			name:      "braces inside string values",
			input:     `{"score": 60, "strengths": ["use of {framing}"]}`,
			expected:  `{"score": 60, "strengths": ["use of {framing}"]}`,
			wantFound: true,
		},
		{
			name:      "escaped quote inside string",
			input:     `{"score": 60, "strengths": ["a \"bold\" look"]}`,
			expected:  `{"score": 60, "strengths": ["a \"bold\" look"]}`,
			wantFound: true,
		},
		{
			name:      "no object at all",
			input:     "The photo looks great, I would rate it highly.",
			wantFound: false,
		},
		{
			name:      "unbalanced braces",
			input:     `{"score": 60, "tags": [`,
			wantFound: false,
		},
		{
			name:      "fenced object",
			input:     "```json\n{\"score\": 95}\n```",
			expected:  `{"score": 95}`,
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONObject(tt.input)
			require.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
