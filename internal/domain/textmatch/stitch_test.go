package textmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Batch stitching — sequential fold over batches, collapsing overlap,
// never dropping content.
// =============================================================================

func TestStitch_Empty(t *testing.T) {
	assert.Equal(t, "", Stitch(nil, DefaultStitchConfig()))
	assert.Equal(t, "", Stitch([]string{}, DefaultStitchConfig()))
}

func TestStitch_SingleBatch(t *testing.T) {
	got := Stitch([]string{"  one batch  \n"}, DefaultStitchConfig())
	assert.Equal(t, "one batch", got)
}

func TestStitch_IdenticalBatchesCollapse(t *testing.T) {
	require.Len(t, ridgeDoc, 100)

	got := Stitch([]string{ridgeDoc, ridgeDoc}, DefaultStitchConfig())

	// The duplicated batch is recognized as pure overlap: the result is
	// the document once, not twice.
	assert.Equal(t, ridgeDoc, got)
}

func TestStitch_NoOverlapUsesSeparator(t *testing.T) {
	cfg := DefaultStitchConfig()
	got := Stitch([]string{"AAA", "BBB"}, cfg)
	assert.Equal(t, "AAA"+cfg.NoOverlapSeparator+"BBB", got)
}

func TestStitch_ExactOverlapKeptOnce(t *testing.T) {
	a := "Start of first batch. shared tail text"
	b := "shared tail text end of second"

	cfg := DefaultStitchConfig()
	cfg.MinOverlapLength = 10

	got := Stitch([]string{a, b}, cfg)

	assert.Equal(t, "Start of first batch. shared tail text end of second", got)
	assert.Equal(t, 1, strings.Count(got, "Start of first batch."))
	assert.Equal(t, 1, strings.Count(got, "shared tail text"))
	assert.Equal(t, 1, strings.Count(got, "end of second"))
}

func TestStitch_ThreeBatchesMixed(t *testing.T) {
	cfg := DefaultStitchConfig()
	cfg.MinOverlapLength = 10

	a := "Opening section of the document. bridge passage one"
	b := "bridge passage one continues into the middle part"
	c := "totally unrelated closing material with nothing shared"

	got := Stitch([]string{a, b, c}, cfg)

	// a+b join on the bridge; c attaches with the separator.
	assert.Equal(t, 1, strings.Count(got, "bridge passage one"))
	assert.Contains(t, got, "continues into the middle part")
	assert.Contains(t, got, cfg.NoOverlapSeparator+c)
	assert.True(t, strings.HasPrefix(got, "Opening section of the document."))
}

func TestStitch_SkipsEmptyBatches(t *testing.T) {
	cfg := DefaultStitchConfig()
	got := Stitch([]string{"AAA", "   ", "BBB"}, cfg)
	assert.Equal(t, "AAA"+cfg.NoOverlapSeparator+"BBB", got)
}

func TestJoin_ReportsWhatItDid(t *testing.T) {
	cfg := DefaultStitchConfig()

	joined, m := Join("AAA", "BBB", cfg)
	assert.Equal(t, MethodNone, m.Method)
	assert.Equal(t, "AAA"+cfg.NoOverlapSeparator+"BBB", joined)
}
