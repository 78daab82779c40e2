package textmatch

import (
	"regexp"
	"strings"
)

var (
	// 3+ consecutive newlines collapse to exactly 2, preserving paragraph
	// breaks.
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
	// Runs of spaces/tabs collapse to a single space.
	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	// Trailing whitespace per line.
	trailingWsRe = regexp.MustCompile(`(?m)[ \t]+$`)
)

// Normalize canonicalizes whitespace and line endings before comparison.
// Both sides of any comparison must go through the same normalization,
// since returned offsets are relative to the normalized text.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	s = newlineRunRe.ReplaceAllString(s, "\n\n")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = trailingWsRe.ReplaceAllString(s, "")
	return s
}
