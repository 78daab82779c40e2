package textmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ridgeDoc is a 100-char document with no repeated phrases, sized so the
// fuzzy scan grids land on predictable offsets.
const ridgeDoc = "The expedition reached the northern ridge at dawn and made camp besides frozen stream under pale sky"

// =============================================================================
// Position matching — exact, fuzzy, and approximate tiers. Locate never
// fails; each tier degrades to the next.
// =============================================================================

func TestLocate_ExactMatch(t *testing.T) {
	doc := "alpha beta gamma delta epsilon"
	m := Locate("gamma", doc, 0, 1, DefaultMatchConfig())

	assert.Equal(t, MethodExact, m.Method)
	assert.Equal(t, 1.0, m.Confidence)
	assert.Equal(t, "gamma", doc[m.Start:m.End])
	assert.Equal(t, "alpha beta", m.ContextBefore)
	assert.Equal(t, "delta epsilon", m.ContextAfter)
}

func TestLocate_ExactFirstOccurrenceWins(t *testing.T) {
	doc := "token here and token there"
	m := Locate("token", doc, 0, 1, DefaultMatchConfig())

	assert.Equal(t, MethodExact, m.Method)
	assert.Equal(t, 0, m.Start)
}

func TestLocate_FuzzyRelocatesModifiedSpan(t *testing.T) {
	require.Len(t, ridgeDoc, 100)

	// The span ridgeDoc[20:80] with one character changed: no exact match,
	// but trigram similarity stays far above the threshold.
	span := ridgeDoc[20:80]
	needle := span[:30] + "x" + span[31:]
	require.NotContains(t, ridgeDoc, needle)

	m := Locate(needle, ridgeDoc, 0, 1, DefaultMatchConfig())

	assert.Equal(t, MethodFuzzy, m.Method)
	assert.GreaterOrEqual(t, m.Confidence, 0.75)
	assert.Less(t, m.Confidence, 1.0)
	// The stride grid may land a few bytes off the true offset.
	assert.InDelta(t, 20, m.Start, 6)
	assert.Equal(t, m.Start+len(needle), m.End)
}

func TestLocate_ApproximateNeverFails(t *testing.T) {
	haystack := strings.Repeat("x", 200)
	needle := strings.Repeat("y", 20)

	m := Locate(needle, haystack, 3, 5, DefaultMatchConfig())

	assert.Equal(t, MethodApproximate, m.Method)
	assert.Equal(t, 0.3, m.Confidence)
	assert.GreaterOrEqual(t, m.Start, 0)
	assert.LessOrEqual(t, m.End, len(haystack))
	assert.GreaterOrEqual(t, m.End, m.Start)
}

func TestLocate_ApproximateProportionalPlacement(t *testing.T) {
	haystack := strings.Repeat("x", 200)
	needle := strings.Repeat("y", 20)

	// index 3 of 5: proportion 3/4 across the 180 spare bytes.
	m := Locate(needle, haystack, 3, 5, DefaultMatchConfig())
	assert.Equal(t, 135, m.Start)
	assert.Equal(t, 155, m.End)

	// First chunk anchors at the document start.
	first := Locate(needle, haystack, 0, 5, DefaultMatchConfig())
	assert.Equal(t, 0, first.Start)

	// A single chunk also anchors at the start.
	single := Locate(needle, haystack, 0, 1, DefaultMatchConfig())
	assert.Equal(t, 0, single.Start)
}

func TestLocate_NeedleLongerThanHaystack(t *testing.T) {
	haystack := "short doc"
	needle := strings.Repeat("z", 50)

	m := Locate(needle, haystack, 0, 1, DefaultMatchConfig())

	assert.Equal(t, MethodApproximate, m.Method)
	assert.Equal(t, 0, m.Start)
	assert.Equal(t, len(haystack), m.End)
}
