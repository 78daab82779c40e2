// Package textmatch implements fuzzy text realignment and batch stitching.
// It relocates a known span of text inside a possibly-modified version of
// its source document with a confidence score, and detects duplicate
// overlap between two independently produced text batches so they can be
// concatenated without losing or repeating content.
//
// Everything in this package is a pure function over immutable inputs —
// no I/O, no shared state. All offsets are byte offsets into the text the
// matcher searched (normalized text for overlap results).
package textmatch

// Method names the tier that produced a match.
type Method string

const (
	MethodExact       Method = "exact"
	MethodFuzzy       Method = "fuzzy"
	MethodApproximate Method = "approximate"
	MethodNone        Method = "none"
)

// PositionMatch is the result of locating a span of text in a document.
// Locate always produces one — the Method and Confidence fields tell the
// caller how much to trust it.
type PositionMatch struct {
	Start         int     `json:"start"`
	End           int     `json:"end"`
	Confidence    float64 `json:"confidence"`
	Method        Method  `json:"method"`
	ContextBefore string  `json:"context_before"`
	ContextAfter  string  `json:"context_after"`
}

// OverlapMatch describes the duplicate region between the tail of one
// batch and the head of the next. StartInA and StartInB are offsets into
// the normalized forms of the two inputs. Method == MethodNone means no
// qualifying overlap was found; Length and Confidence are then zero and
// StartInA sits at the end of A, where a caller would insert a separator.
type OverlapMatch struct {
	StartInA   int     `json:"start_in_a"`
	StartInB   int     `json:"start_in_b"`
	Length     int     `json:"length"`
	Confidence float64 `json:"confidence"`
	Method     Method  `json:"method"`
	Text       string  `json:"text"`
}

// MatchConfig tunes position matching. Build overrides by assigning fields
// on top of DefaultMatchConfig().
type MatchConfig struct {
	// TrigramThreshold is the minimum Jaccard similarity a fuzzy window
	// must reach to qualify.
	TrigramThreshold float64
	// MinConfidence is the confidence assigned to approximate (tier 3)
	// results.
	MinConfidence float64
	// StridePercent sets the fuzzy scan stride as a fraction of needle
	// length. Doubled when the haystack offers more than 100 candidate
	// windows.
	StridePercent float64
	// ContextWindowChars bounds the raw slice that context snippets are
	// cut from.
	ContextWindowChars int
}

// DefaultMatchConfig returns the standard matching parameters.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		TrigramThreshold:   0.75,
		MinConfidence:      0.3,
		StridePercent:      0.10,
		ContextWindowChars: 100,
	}
}

// StitchConfig tunes overlap detection and batch stitching.
type StitchConfig struct {
	// MinOverlapLength is the shortest overlap worth collapsing.
	MinOverlapLength int
	// MaxOverlapPercent bounds the search window: the last fraction of A
	// and the first fraction of B.
	MaxOverlapPercent float64
	// OverlapThreshold is the minimum Jaccard similarity for a fuzzy
	// overlap.
	OverlapThreshold float64
	// NoOverlapSeparator is inserted between batches when no overlap is
	// found.
	NoOverlapSeparator string
}

// DefaultStitchConfig returns the standard stitching parameters.
func DefaultStitchConfig() StitchConfig {
	return StitchConfig{
		MinOverlapLength:   20,
		MaxOverlapPercent:  0.8,
		OverlapThreshold:   0.80,
		NoOverlapSeparator: "\n\n---\n\n",
	}
}
