package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnalysisResponse(t *testing.T) {
	tests := []struct {
		name     string
		jsonText string
		wantErr  bool
	}{
		{
			name: "complete conforming response",
			jsonText: `{
				"score": 85,
				"visualQuality": 80,
				"tags": ["outdoor"],
				"strengths": ["natural light"],
				"technicalFeedback": {"lighting": "warm"},
				"datingInsights": {"profileRole": "main photo"}
			}`,
			wantErr: false,
		},
		{
			name:     "minimal response with only score",
			jsonText: `{"score": 70}`,
			wantErr:  false,
		},
		{
			name:     "missing score",
			jsonText: `{"visualQuality": 80}`,
			wantErr:  true,
		},
		{
			name:     "score out of range",
			jsonText: `{"score": 140}`,
			wantErr:  true,
		},
		{
			name:     "score as string",
			jsonText: `{"score": "85"}`,
			wantErr:  true,
		},
		{
			name:     "tags not an array",
			jsonText: `{"score": 60, "tags": "outdoor"}`,
			wantErr:  true,
		},
		{
			name:     "not JSON at all",
			jsonText: `the photo is great, score: 90`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnalysisResponse(tt.jsonText)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAnalysisResponse_FieldErrors(t *testing.T) {
	err := ValidateAnalysisResponse(`{"score": 120}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "score", ve.Errors[0].Field)
}
