package textmatch

// Fuzzy overlap scan step sizes: candidate length shrinks by 20 per round,
// window positions move by 10.
const (
	overlapLengthStep   = 20
	overlapPositionStep = 10
)

// FindOverlap locates the duplicate region between the tail of textA and
// the head of textB. The search is bounded to the last MaxOverlapPercent
// of A and the first MaxOverlapPercent of B (both normalized — returned
// offsets are into the normalized strings). Two tiers: an exact
// descending-length scan where the longest equal tail/head pair wins, then
// a fuzzy trigram scan with the same largest-acceptable-overlap bias.
// When neither tier qualifies, the result has Method == MethodNone and
// StartInA at the end of A.
func FindOverlap(textA, textB string, cfg StitchConfig) OverlapMatch {
	na := Normalize(textA)
	nb := Normalize(textB)

	aWin := int(float64(len(na)) * cfg.MaxOverlapPercent)
	bWin := int(float64(len(nb)) * cfg.MaxOverlapPercent)
	aOffset := len(na) - aWin
	windowA := na[aOffset:]
	windowB := nb[:bWin]

	if m, ok := overlapExact(windowA, windowB, aOffset, cfg); ok {
		return m
	}
	if m, ok := overlapFuzzy(windowA, windowB, aOffset, cfg); ok {
		return m
	}
	return OverlapMatch{StartInA: len(na), Method: MethodNone}
}

// overlapExact scans candidate lengths from the largest possible down to
// the minimum, comparing A's tail against B's head. The first equal pair
// is the longest valid overlap and wins immediately.
func overlapExact(windowA, windowB string, aOffset int, cfg StitchConfig) (OverlapMatch, bool) {
	maxL := min(len(windowA), len(windowB))
	for l := maxL; l >= minOverlap(cfg); l-- {
		tail := windowA[len(windowA)-l:]
		if tail == windowB[:l] {
			return OverlapMatch{
				StartInA:   aOffset + len(windowA) - l,
				StartInB:   0,
				Length:     l,
				Confidence: 1.0,
				Method:     MethodExact,
				Text:       tail,
			}, true
		}
	}
	return OverlapMatch{}, false
}

// overlapFuzzy runs the nested trigram scan: for each candidate length
// (largest first), slide backward through A and forward through B. The
// first length that yields a qualifying pair is returned without trying
// shorter ones, matching the exact tier's longest-overlap bias.
func overlapFuzzy(windowA, windowB string, aOffset int, cfg StitchConfig) (OverlapMatch, bool) {
	maxL := min(len(windowA), len(windowB))
	for l := maxL; l >= minOverlap(cfg); l -= overlapLengthStep {
		bestSim := 0.0
		bestA, bestB := -1, 0

		for posA := len(windowA) - l; posA >= 0; posA -= overlapPositionStep {
			trisA := Trigrams(windowA[posA : posA+l])
			for posB := 0; posB+l <= len(windowB); posB += overlapPositionStep {
				sim := Jaccard(trisA, Trigrams(windowB[posB:posB+l]))
				if sim > bestSim && sim >= cfg.OverlapThreshold {
					bestSim, bestA, bestB = sim, posA, posB
					if sim > goodEnoughSimilarity {
						return fuzzyOverlap(windowA, aOffset, bestA, bestB, l, bestSim), true
					}
				}
			}
		}

		if bestA >= 0 {
			return fuzzyOverlap(windowA, aOffset, bestA, bestB, l, bestSim), true
		}
	}
	return OverlapMatch{}, false
}

// fuzzyOverlap builds the result; Text comes from the A side, which is the
// copy the stitcher keeps.
func fuzzyOverlap(windowA string, aOffset, posA, posB, length int, sim float64) OverlapMatch {
	return OverlapMatch{
		StartInA:   aOffset + posA,
		StartInB:   posB,
		Length:     length,
		Confidence: sim,
		Method:     MethodFuzzy,
		Text:       windowA[posA : posA+length],
	}
}

func minOverlap(cfg StitchConfig) int {
	if cfg.MinOverlapLength < 1 {
		return 1
	}
	return cfg.MinOverlapLength
}
