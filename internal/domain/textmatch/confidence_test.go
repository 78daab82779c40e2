package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Confidence tiers — the 0.7/0.5 boundaries are consumed by badge
// rendering and review queuing and must hold exactly.
// =============================================================================

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Tier
	}{
		{1.0, TierHigh},
		{0.70, TierHigh},
		{0.69, TierMedium},
		{0.50, TierMedium},
		{0.49, TierLow},
		{0.30, TierLow},
		{0.0, TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.confidence), "confidence %v", tt.confidence)
	}
}
