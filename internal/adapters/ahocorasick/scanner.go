// Package ahocorasick provides one-pass multi-needle exact scanning using
// an Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick
// library so a batch of chunks can be resolved against a document in
// O(doc + needles + hits) instead of one substring scan per chunk.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Occurrence is a single exact hit with byte offsets into the scanned text.
type Occurrence struct {
	Pattern int // index into the original patterns slice
	Start   int // byte offset start (inclusive)
	End     int // byte offset end (exclusive)
}

// Scanner wraps an Aho-Corasick automaton over a fixed pattern set.
type Scanner struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// NewScanner builds a scanner from the given patterns. Empty patterns are
// the caller's problem — filter them out first.
func NewScanner(patterns []string) *Scanner {
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	p := make([]string, len(patterns))
	copy(p, patterns)
	return &Scanner{
		automaton: builder.Build(p),
		patterns:  p,
	}
}

// Scan finds all pattern matches in text and returns them with byte offsets.
func (s *Scanner) Scan(text string) []Occurrence {
	iter := s.automaton.IterOverlapping(text)
	var matches []Occurrence
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, Occurrence{
			Pattern: m.Pattern(),
			Start:   m.Start(),
			End:     m.End(),
		})
	}
	return matches
}

// FirstOccurrences returns, for each pattern that appears in text, the byte
// offset of its first occurrence. Patterns that never appear are absent
// from the map.
func (s *Scanner) FirstOccurrences(text string) map[int]int {
	first := make(map[int]int)
	for _, m := range s.Scan(text) {
		if _, seen := first[m.Pattern]; !seen {
			first[m.Pattern] = m.Start
		}
	}
	return first
}

// PatternCount returns the number of patterns in the automaton.
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}

// Pattern returns the pattern string at the given index.
func (s *Scanner) Pattern(idx int) string {
	if idx < 0 || idx >= len(s.patterns) {
		return ""
	}
	return s.patterns[idx]
}
