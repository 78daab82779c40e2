package textmatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput reports a stored annotation missing its required fields.
// This is the only error the engine surfaces; every other failure mode
// degrades to a lower-confidence match instead.
var ErrInvalidInput = errors.New("textmatch: invalid stored annotation")

// StoredContext is the snippet pair captured around an annotation when it
// was created. Restore validates its presence; the text on either side of
// the restored position is what downstream reconciliation compares it to.
type StoredContext struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// StoredAnnotation is what a caller persisted about a user annotation:
// the annotated text and its surrounding context.
type StoredAnnotation struct {
	Text    string        `json:"text"`
	Context StoredContext `json:"context"`
}

// Restore relocates a stored annotation inside the current (possibly
// reprocessed) version of its document: exact occurrence first, then the
// fuzzy trigram tier, then a proportional estimate at the document start.
// Errors only when the stored record is missing its text or context.
func Restore(stored StoredAnnotation, document string) (PositionMatch, error) {
	if strings.TrimSpace(stored.Text) == "" {
		return PositionMatch{}, fmt.Errorf("%w: text is empty", ErrInvalidInput)
	}
	if stored.Context.Before == "" && stored.Context.After == "" {
		return PositionMatch{}, fmt.Errorf("%w: context is empty", ErrInvalidInput)
	}

	cfg := DefaultMatchConfig()
	if m, ok := locateExact(stored.Text, document, cfg); ok {
		return m, nil
	}
	if m, ok := locateFuzzy(stored.Text, document, cfg); ok {
		return m, nil
	}
	return locateApproximate(stored.Text, document, 0, 1, cfg), nil
}
