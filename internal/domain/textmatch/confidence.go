package textmatch

// Tier is the discrete classification of a confidence score. The numeric
// boundaries are a hard external contract: badge rendering and review
// queuing both key off them.
type Tier string

const (
	// TierHigh needs no caller warning.
	TierHigh Tier = "high"
	// TierMedium should be flagged as approximate.
	TierMedium Tier = "medium"
	// TierLow should be flagged as needing verification.
	TierLow Tier = "low"
)

// TierFor maps a confidence score to its tier: >=0.7 high, >=0.5 medium,
// below that low.
func TierFor(confidence float64) Tier {
	switch {
	case confidence >= 0.7:
		return TierHigh
	case confidence >= 0.5:
		return TierMedium
	default:
		return TierLow
	}
}
