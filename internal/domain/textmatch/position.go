package textmatch

import "strings"

// Fuzzy scanning stops as soon as a window beats this similarity — a
// better match is not worth the remaining scan.
const goodEnoughSimilarity = 0.95

// denseWindowCount is the candidate-window count above which the fuzzy
// stride doubles. Performance control only; tier outcomes stay the same.
const denseWindowCount = 100

// Locate finds needle inside haystack, degrading through three tiers:
// exact substring, trigram sliding-window fuzzy search, and a proportional
// estimate from the needle's position in its source sequence (index out of
// total). It never fails: the worst case is an approximate match at
// MinConfidence that the caller should treat as needing verification.
func Locate(needle, haystack string, index, total int, cfg MatchConfig) PositionMatch {
	if m, ok := locateExact(needle, haystack, cfg); ok {
		return m
	}
	if m, ok := locateFuzzy(needle, haystack, cfg); ok {
		return m
	}
	return locateApproximate(needle, haystack, index, total, cfg)
}

// locateExact is tier 1: first exact occurrence wins.
func locateExact(needle, haystack string, cfg MatchConfig) (PositionMatch, bool) {
	pos := strings.Index(haystack, needle)
	if pos < 0 {
		return PositionMatch{}, false
	}
	end := pos + len(needle)
	return PositionMatch{
		Start:         pos,
		End:           end,
		Confidence:    1.0,
		Method:        MethodExact,
		ContextBefore: ContextBefore(haystack, pos, cfg.ContextWindowChars),
		ContextAfter:  ContextAfter(haystack, end, cfg.ContextWindowChars),
	}, true
}

// locateFuzzy is tier 2: slide a needle-sized window across the haystack
// and keep the best window at or above the trigram threshold. Replacement
// requires strictly greater similarity, so the first window at a given
// score keeps priority over later equals.
func locateFuzzy(needle, haystack string, cfg MatchConfig) (PositionMatch, bool) {
	n := len(needle)
	if n == 0 || n > len(haystack) {
		return PositionMatch{}, false
	}

	needleTris := Trigrams(needle)

	stridePct := cfg.StridePercent
	if len(haystack)-n+1 > denseWindowCount {
		stridePct *= 2
	}
	stride := int(float64(n) * stridePct)
	if stride < 1 {
		stride = 1
	}

	bestPos := -1
	bestSim := 0.0
	for pos := 0; pos+n <= len(haystack); pos += stride {
		sim := Jaccard(needleTris, Trigrams(haystack[pos:pos+n]))
		if sim > bestSim && sim >= cfg.TrigramThreshold {
			bestPos, bestSim = pos, sim
			if sim > goodEnoughSimilarity {
				break
			}
		}
	}
	if bestPos < 0 {
		return PositionMatch{}, false
	}

	end := bestPos + n
	return PositionMatch{
		Start:         bestPos,
		End:           end,
		Confidence:    bestSim,
		Method:        MethodFuzzy,
		ContextBefore: ContextBefore(haystack, bestPos, cfg.ContextWindowChars),
		ContextAfter:  ContextAfter(haystack, end, cfg.ContextWindowChars),
	}, true
}

// locateApproximate is tier 3: estimate the offset from where the chunk
// sat in its source sequence. Always defined, fixed low confidence.
func locateApproximate(needle, haystack string, index, total int, cfg MatchConfig) PositionMatch {
	span := len(haystack) - len(needle)
	if span < 0 {
		span = 0
	}

	proportion := 0.0
	if total > 1 {
		proportion = float64(index) / float64(total-1)
	}

	start := int(proportion * float64(span))
	if start < 0 {
		start = 0
	}
	if start > span {
		start = span
	}
	end := start + len(needle)
	if end > len(haystack) {
		end = len(haystack)
	}

	return PositionMatch{
		Start:         start,
		End:           end,
		Confidence:    cfg.MinConfidence,
		Method:        MethodApproximate,
		ContextBefore: ContextBefore(haystack, start, cfg.ContextWindowChars),
		ContextAfter:  ContextAfter(haystack, end, cfg.ContextWindowChars),
	}
}
