package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Context snippets — audit display around a match position.
// =============================================================================

func TestContextBefore_KeepsLastFiveTokens(t *testing.T) {
	text := "one two three four five six seven MATCH"
	pos := len(text) - len("MATCH")

	got := ContextBefore(text, pos, 100)
	assert.Equal(t, "three four five six seven", got)
}

func TestContextAfter_KeepsFirstFiveTokens(t *testing.T) {
	text := "MATCH one two three four five six seven"

	got := ContextAfter(text, len("MATCH"), 100)
	assert.Equal(t, "one two three four five", got)
}

func TestContext_BoundedByMaxChars(t *testing.T) {
	text := "aaaa bbbb cccc dddd MATCH"
	pos := len(text) - len("MATCH")

	// Only the last 10 chars before pos are visible: "cccc dddd ".
	got := ContextBefore(text, pos, 10)
	assert.Equal(t, "cccc dddd", got)
}

func TestContext_WhitespaceOnlySlice(t *testing.T) {
	text := "     MATCH"
	got := ContextBefore(text, 5, 5)
	assert.Equal(t, "", got)
}

func TestContext_AtDocumentEdges(t *testing.T) {
	text := "hello world"
	assert.Equal(t, "", ContextBefore(text, 0, 100))
	assert.Equal(t, "", ContextAfter(text, len(text), 100))
}

func TestContext_OutOfRangePositionsClamp(t *testing.T) {
	text := "hello world"
	assert.Equal(t, "hello world", ContextBefore(text, 500, 100))
	assert.Equal(t, "hello world", ContextAfter(text, -3, 100))
}
