package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Trigram shingles and Jaccard similarity — the metric behind every fuzzy
// tier in the package.
// =============================================================================

func TestTrigrams_Hello(t *testing.T) {
	set := Trigrams("hello")
	require.Len(t, set, 3)

	assert.Contains(t, set, packTrigram('h', 'e', 'l'))
	assert.Contains(t, set, packTrigram('e', 'l', 'l'))
	assert.Contains(t, set, packTrigram('l', 'l', 'o'))
}

func TestTrigrams_ShortStringsYieldEmptySet(t *testing.T) {
	assert.Empty(t, Trigrams(""))
	assert.Empty(t, Trigrams("a"))
	assert.Empty(t, Trigrams("ab"))
	assert.Len(t, Trigrams("abc"), 1)
}

func TestTrigrams_DeduplicatesRepeats(t *testing.T) {
	// "aaaa" contains "aaa" twice but the set holds it once.
	assert.Len(t, Trigrams("aaaa"), 1)
}

func TestJaccard_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard(TrigramSet{}, TrigramSet{}))
}

func TestJaccard_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard(Trigrams("abc"), TrigramSet{}))
	assert.Equal(t, 0.0, Jaccard(TrigramSet{}, Trigrams("abc")))
}

func TestJaccard_IdenticalSets(t *testing.T) {
	a := Trigrams("the quick brown fox")
	b := Trigrams("the quick brown fox")
	assert.Equal(t, 1.0, Jaccard(a, b))
}

func TestJaccard_DisjointSets(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard(Trigrams("aaaa"), Trigrams("bbbb")))
}

func TestJaccard_PartialOverlap(t *testing.T) {
	// {abc, bcd} vs {abc, bce}: intersection 1, union 3.
	sim := Jaccard(Trigrams("abcd"), Trigrams("abce"))
	assert.InDelta(t, 1.0/3.0, sim, 1e-9)
}

func TestJaccard_Symmetric(t *testing.T) {
	a := Trigrams("shared tail text here")
	b := Trigrams("shared tail text there")
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}
