package app

import (
	"fmt"
	"time"

	"github.com/corey/seam/internal/domain/textmatch"
	"github.com/corey/seam/internal/ports"
)

// SessionManager runs resumable stitch sessions: each appended batch is
// joined onto the accumulated result and checkpointed before the call
// returns, so an interrupted run picks up where it left off.
type SessionManager struct {
	store ports.CheckpointStore
	cfg   textmatch.StitchConfig
}

// NewSessionManager creates a manager over the given checkpoint store.
func NewSessionManager(store ports.CheckpointStore, cfg textmatch.StitchConfig) *SessionManager {
	return &SessionManager{store: store, cfg: cfg}
}

// Open loads an existing session or starts a fresh one.
func (m *SessionManager) Open(id string) (*ports.StitchSession, error) {
	if id == "" {
		return nil, fmt.Errorf("empty session id")
	}
	sess, err := m.store.LoadSession(id)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", id, err)
	}
	if sess == nil {
		sess = &ports.StitchSession{ID: id}
	}
	return sess, nil
}

// Append joins one batch onto the session and checkpoints the result.
// The returned OverlapMatch reports what the join did; the first batch of
// a session has nothing to join against and reports MethodNone with
// no separator.
func (m *SessionManager) Append(sess *ports.StitchSession, batchName, text string) (textmatch.OverlapMatch, error) {
	next := textmatch.Normalize(text)
	var match textmatch.OverlapMatch

	switch {
	case next == "":
		// Nothing to add; still record the batch so resume logic can
		// tell it was seen.
		match = textmatch.OverlapMatch{Method: textmatch.MethodNone}
	case sess.BatchesApplied == 0 || sess.Result == "":
		sess.Result = next
		match = textmatch.OverlapMatch{Method: textmatch.MethodNone}
	default:
		sess.Result, match = textmatch.Join(sess.Result, next, m.cfg)
	}

	sess.BatchesApplied++
	sess.LastBatch = batchName
	sess.Joins = append(sess.Joins, ports.JoinRecord{
		BatchName:     batchName,
		Method:        string(match.Method),
		Confidence:    match.Confidence,
		OverlapLength: match.Length,
		SeparatorUsed: match.Method == textmatch.MethodNone && sess.BatchesApplied > 1 && next != "",
		AppliedAt:     time.Now().UTC(),
	})
	sess.UpdatedAt = time.Now().UTC()

	if err := m.store.SaveSession(sess); err != nil {
		return match, fmt.Errorf("checkpoint session %q: %w", sess.ID, err)
	}
	return match, nil
}

// Seen reports whether the session already applied a batch with this name.
func (m *SessionManager) Seen(sess *ports.StitchSession, batchName string) bool {
	for _, j := range sess.Joins {
		if j.BatchName == batchName {
			return true
		}
	}
	return false
}

// Reset deletes a session's checkpoint so the next Open starts fresh.
func (m *SessionManager) Reset(id string) error {
	return m.store.DeleteSession(id)
}
