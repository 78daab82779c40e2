package textmatch

import "strings"

// contextTokens is how many whitespace-delimited tokens a context snippet
// keeps on each side of a match.
const contextTokens = 5

// ContextBefore returns a word-bounded snippet of up to maxChars ending at
// pos: the last 5 tokens of the slice, or the trimmed raw slice when it
// contains no tokens. Audit display only — never feeds back into offsets.
func ContextBefore(text string, pos, maxChars int) string {
	pos = clampOffset(pos, len(text))
	start := pos - maxChars
	if start < 0 {
		start = 0
	}
	slice := text[start:pos]
	fields := strings.Fields(slice)
	if len(fields) == 0 {
		return strings.TrimSpace(slice)
	}
	if len(fields) > contextTokens {
		fields = fields[len(fields)-contextTokens:]
	}
	return strings.Join(fields, " ")
}

// ContextAfter is the mirror of ContextBefore: up to maxChars starting at
// pos, keeping the first 5 tokens.
func ContextAfter(text string, pos, maxChars int) string {
	pos = clampOffset(pos, len(text))
	end := pos + maxChars
	if end > len(text) {
		end = len(text)
	}
	slice := text[pos:end]
	fields := strings.Fields(slice)
	if len(fields) == 0 {
		return strings.TrimSpace(slice)
	}
	if len(fields) > contextTokens {
		fields = fields[:contextTokens]
	}
	return strings.Join(fields, " ")
}

func clampOffset(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}
