package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Annotation restore — the one error surface in the engine.
// =============================================================================

func TestRestore_MissingTextIsInvalid(t *testing.T) {
	_, err := Restore(StoredAnnotation{
		Text:    "   ",
		Context: StoredContext{Before: "some", After: "context"},
	}, "document body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRestore_MissingContextIsInvalid(t *testing.T) {
	_, err := Restore(StoredAnnotation{Text: "highlighted passage"}, "document body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRestore_OneSidedContextIsValid(t *testing.T) {
	// An annotation at the document start has no before-context.
	doc := "highlighted passage followed by the rest of the document"
	m, err := Restore(StoredAnnotation{
		Text:    "highlighted passage",
		Context: StoredContext{After: "followed by"},
	}, doc)

	require.NoError(t, err)
	assert.Equal(t, MethodExact, m.Method)
	assert.Equal(t, 0, m.Start)
}

func TestRestore_ExactRelocation(t *testing.T) {
	doc := "Intro text. The annotated sentence sits here. Outro text."
	m, err := Restore(StoredAnnotation{
		Text:    "The annotated sentence sits here.",
		Context: StoredContext{Before: "Intro text.", After: "Outro text."},
	}, doc)

	require.NoError(t, err)
	assert.Equal(t, MethodExact, m.Method)
	assert.Equal(t, 1.0, m.Confidence)
	assert.Equal(t, "The annotated sentence sits here.", doc[m.Start:m.End])
}

func TestRestore_FuzzyAfterReprocessing(t *testing.T) {
	require.Len(t, ridgeDoc, 100)

	// The stored span no longer appears verbatim: one character changed
	// during reprocessing.
	span := ridgeDoc[20:80]
	stored := span[:30] + "x" + span[31:]
	require.NotContains(t, ridgeDoc, stored)

	m, err := Restore(StoredAnnotation{
		Text:    stored,
		Context: StoredContext{Before: ridgeDoc[:20], After: ridgeDoc[80:]},
	}, ridgeDoc)

	require.NoError(t, err)
	assert.Equal(t, MethodFuzzy, m.Method)
	assert.GreaterOrEqual(t, m.Confidence, 0.75)
}

func TestRestore_DegradesToApproximate(t *testing.T) {
	m, err := Restore(StoredAnnotation{
		Text:    "zzzz qqqq wwww",
		Context: StoredContext{Before: "unrelated", After: "anchors"},
	}, "a document that shares nothing at all with the stored record")

	require.NoError(t, err)
	assert.Equal(t, MethodApproximate, m.Method)
	assert.Equal(t, 0.3, m.Confidence)
	assert.Equal(t, 0, m.Start)
}
