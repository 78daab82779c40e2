package textmatch

import "time"

// BatchStats summarizes a LocateBatch run: how many chunks resolved at
// each tier, and timing.
type BatchStats struct {
	Total       int           `json:"total"`
	Exact       int           `json:"exact"`
	Fuzzy       int           `json:"fuzzy"`
	Approximate int           `json:"approximate"`
	TotalTime   time.Duration `json:"total_time"`
	AvgPerItem  time.Duration `json:"avg_per_item"`
}

// LocateBatch locates each needle in the shared haystack, in order. Each
// needle's sequence position feeds the approximate tier, so even chunks
// with no textual anchor land near where they belong.
func LocateBatch(needles []string, haystack string, cfg MatchConfig) ([]PositionMatch, BatchStats) {
	start := time.Now()
	matches := make([]PositionMatch, len(needles))
	stats := BatchStats{Total: len(needles)}

	for i, needle := range needles {
		m := Locate(needle, haystack, i, len(needles), cfg)
		matches[i] = m
		stats.count(m.Method)
	}

	stats.TotalTime = time.Since(start)
	if stats.Total > 0 {
		stats.AvgPerItem = stats.TotalTime / time.Duration(stats.Total)
	}
	return matches, stats
}

func (s *BatchStats) count(m Method) {
	switch m {
	case MethodExact:
		s.Exact++
	case MethodFuzzy:
		s.Fuzzy++
	default:
		s.Approximate++
	}
}
