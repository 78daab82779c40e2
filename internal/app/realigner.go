package app

import (
	"runtime"
	"sync"
	"time"

	"github.com/corey/seam/internal/adapters/ahocorasick"
	"github.com/corey/seam/internal/domain/textmatch"
)

// Realigner resolves many chunks against one document. Two phases: a
// single Aho-Corasick pass settles every chunk that still appears
// verbatim, then the remainder fans out across workers for the fuzzy and
// approximate tiers. Chunks are independent of each other, so the fan-out
// changes nothing about the results — only the wall time.
type Realigner struct {
	cfg     textmatch.MatchConfig
	workers int
}

// NewRealigner creates a realigner with the given match configuration and
// one worker per CPU.
func NewRealigner(cfg textmatch.MatchConfig) *Realigner {
	return &Realigner{cfg: cfg, workers: runtime.NumCPU()}
}

// Run locates every needle in the haystack, preserving input order in the
// returned matches.
func (r *Realigner) Run(needles []string, haystack string) ([]textmatch.PositionMatch, textmatch.BatchStats) {
	start := time.Now()
	matches := make([]textmatch.PositionMatch, len(needles))
	stats := textmatch.BatchStats{Total: len(needles)}

	// Phase 1: one automaton pass over the document resolves all needles
	// that still appear verbatim. Duplicate and empty needles are folded
	// out of the pattern set.
	exactAt := r.exactPrepass(needles, haystack)

	var pending []int
	for i, needle := range needles {
		if pos, ok := exactAt[needle]; ok {
			matches[i] = r.exactMatch(needle, haystack, pos)
			continue
		}
		pending = append(pending, i)
	}

	// Phase 2: fuzzy/approximate tiers for the rest, fanned out across
	// workers. Each worker writes only its own slots.
	if len(pending) > 0 {
		jobs := make(chan int, len(pending))
		var wg sync.WaitGroup
		for w := 0; w < r.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					matches[i] = textmatch.Locate(needles[i], haystack, i, len(needles), r.cfg)
				}
			}()
		}
		for _, i := range pending {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for _, m := range matches {
		switch m.Method {
		case textmatch.MethodExact:
			stats.Exact++
		case textmatch.MethodFuzzy:
			stats.Fuzzy++
		default:
			stats.Approximate++
		}
	}
	stats.TotalTime = time.Since(start)
	if stats.Total > 0 {
		stats.AvgPerItem = stats.TotalTime / time.Duration(stats.Total)
	}
	return matches, stats
}

// exactPrepass returns needle -> first occurrence offset for every needle
// that appears verbatim in the haystack.
func (r *Realigner) exactPrepass(needles []string, haystack string) map[string]int {
	unique := make([]string, 0, len(needles))
	seen := make(map[string]bool, len(needles))
	for _, n := range needles {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		unique = append(unique, n)
	}
	if len(unique) == 0 {
		return nil
	}

	scanner := ahocorasick.NewScanner(unique)
	first := scanner.FirstOccurrences(haystack)

	exactAt := make(map[string]int, len(first))
	for patternIdx, pos := range first {
		exactAt[scanner.Pattern(patternIdx)] = pos
	}
	return exactAt
}

// exactMatch builds the tier-1 result for a needle the prepass resolved.
func (r *Realigner) exactMatch(needle, haystack string, pos int) textmatch.PositionMatch {
	end := pos + len(needle)
	return textmatch.PositionMatch{
		Start:         pos,
		End:           end,
		Confidence:    1.0,
		Method:        textmatch.MethodExact,
		ContextBefore: textmatch.ContextBefore(haystack, pos, r.cfg.ContextWindowChars),
		ContextAfter:  textmatch.ContextAfter(haystack, end, r.cfg.ContextWindowChars),
	}
}
