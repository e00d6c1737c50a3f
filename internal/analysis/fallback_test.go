package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d-p-harms/photoranker/internal/types"
)

func TestRejected(t *testing.T) {
	r := Rejected("p2", "photo_2", "content policy violation: adult content detected")

	assert.Equal(t, types.OutcomeRejected, r.Outcome)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 0, r.VisualQuality)
	assert.Equal(t, 0, r.SwipeWorthiness)
	assert.Equal(t, []string{"content policy violation: adult content detected"}, r.Improvements)
	assert.NotNil(t, r.Tags)
	assert.NotNil(t, r.Strengths)
	assert.NotEmpty(t, r.NextPhotoSuggestions)
}

func TestFallback(t *testing.T) {
	r := Fallback("p3", "photo_3", "all 3 attempts failed: deadline exceeded")

	assert.Equal(t, types.OutcomeFallback, r.Outcome)
	assert.Equal(t, 70, r.Score)
	assert.Equal(t, 70, r.AttractivenessScore)
	assert.Equal(t, 70, r.DatingAppealScore)
	assert.Contains(t, r.Improvements[0], "all 3 attempts failed")
	assert.NotNil(t, r.Tags)
	assert.NotNil(t, r.Strengths)
}
