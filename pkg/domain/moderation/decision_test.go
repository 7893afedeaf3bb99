package moderation_test

import (
	"testing"

	"github.com/NeuralTrust/TrustModeration/pkg/domain/moderation"
	"github.com/stretchr/testify/assert"
)

func TestDecide_UnflaggedIsAlwaysSafe(t *testing.T) {
	confidences := []float64{0, 0.5, 0.8, 0.81, 1}
	for _, tc := range confidences {
		for _, ic := range confidences {
			assert.Equal(t, moderation.DecisionSafe, moderation.Decide(false, tc, false, ic), "text=%v image=%v", tc, ic)
		}
	}
}

func TestDecide_Flagged(t *testing.T) {
	tests := []struct {
		name            string
		textFlagged     bool
		textConfidence  float64
		imageFlagged    bool
		imageConfidence float64
		expected        moderation.Decision
	}{
		{"text flagged high confidence", true, 0.95, false, 0, moderation.DecisionBlock},
		{"text flagged low confidence", true, 0.3, false, 0, moderation.DecisionReview},
		{"image flagged high confidence", false, 0, true, 0.9, moderation.DecisionBlock},
		{"image flagged at image threshold", false, 0, true, 0.75, moderation.DecisionReview},
		{"text exactly at block threshold", true, 0.8, false, 0, moderation.DecisionReview},
		{"text just above block threshold", true, 0.8000001, false, 0, moderation.DecisionBlock},
		{"flagged with zero confidence", true, 0, false, 0, moderation.DecisionReview},
		{"unflagged image pushes flagged text to block", true, 0, false, 0.85, moderation.DecisionBlock},
		{"both flagged below threshold", true, 0.5, true, 0.79, moderation.DecisionReview},
		{"both flagged one above", true, 0.5, true, 0.81, moderation.DecisionBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moderation.Decide(tt.textFlagged, tt.textConfidence, tt.imageFlagged, tt.imageConfidence)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecide_BlockIffMaxAboveThreshold(t *testing.T) {
	flags := [][2]bool{{true, false}, {false, true}, {true, true}}
	confidences := []float64{0, 0.2, 0.7, 0.8, 0.8000001, 0.9, 1}
	for _, f := range flags {
		for _, tc := range confidences {
			for _, ic := range confidences {
				got := moderation.Decide(f[0], tc, f[1], ic)
				if tc > 0.8 || ic > 0.8 {
					assert.Equal(t, moderation.DecisionBlock, got)
				} else {
					assert.Equal(t, moderation.DecisionReview, got)
				}
			}
		}
	}
}

func TestDecide_Idempotent(t *testing.T) {
	first := moderation.Decide(true, 0.42, false, 0.1)
	second := moderation.Decide(true, 0.42, false, 0.1)
	assert.Equal(t, first, second)
}

func TestFuse_MissingImageDefaultsToUnflagged(t *testing.T) {
	text := &moderation.ClassificationResult{Flagged: true, Confidence: 0.6}

	verdict := moderation.Fuse(text, nil)

	assert.Equal(t, moderation.DecisionReview, verdict.Decision)
	assert.Equal(t, 0.6, verdict.TextConfidence)
	assert.Equal(t, 0.0, verdict.ImageConfidence)
	assert.Equal(t, 0.6, verdict.MaxConfidence())
}

func TestFuse_NSFWImageWithoutTextBlocks(t *testing.T) {
	image := moderation.NewImageResult([]moderation.Category{
		{Label: "normal", Score: 0.1},
		{Label: "nsfw", Score: 0.9},
	})
	assert.True(t, image.Flagged)
	assert.Equal(t, 0.9, image.Confidence)

	verdict := moderation.Fuse(nil, &image)

	assert.Equal(t, moderation.DecisionBlock, verdict.Decision)
	assert.Equal(t, 0.9, verdict.MaxConfidence())
}

func TestSingleModalityDecision(t *testing.T) {
	assert.Equal(t, moderation.DecisionBlock, moderation.SingleModalityDecision(moderation.ClassificationResult{Flagged: true, Confidence: 0.1}))
	assert.Equal(t, moderation.DecisionSafe, moderation.SingleModalityDecision(moderation.ClassificationResult{Confidence: 0.99}))
}

func TestDecision_IsValid(t *testing.T) {
	assert.True(t, moderation.DecisionReview.IsValid())
	assert.False(t, moderation.Decision("ALLOW").IsValid())
}
