// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

import "time"

// JoinRecord is the audit entry for one stitch join: which batch was
// appended and what the overlap detector decided.
type JoinRecord struct {
	BatchName     string    `json:"batch_name"`
	Method        string    `json:"method"`
	Confidence    float64   `json:"confidence"`
	OverlapLength int       `json:"overlap_length"`
	SeparatorUsed bool      `json:"separator_used"`
	AppliedAt     time.Time `json:"applied_at"`
}

// StitchSession is the checkpoint document for an in-progress stitch:
// the accumulated (normalized) result plus the join audit trail. Saved
// after every appended batch so an interrupted run resumes without
// restitching.
type StitchSession struct {
	ID             string       `json:"id"`
	Result         string       `json:"result"`
	BatchesApplied int          `json:"batches_applied"`
	LastBatch      string       `json:"last_batch"`
	Joins          []JoinRecord `json:"joins"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// CheckpointStore persists stitch sessions to durable storage.
//
// Crash safety: SaveSession must be transactional — a crash mid-write
// cannot corrupt a previously committed session.
type CheckpointStore interface {
	// SaveSession persists the full session, overwriting any prior state
	// for the same ID.
	SaveSession(s *StitchSession) error

	// LoadSession retrieves a session by ID.
	// Returns nil, nil if no session exists.
	LoadSession(id string) (*StitchSession, error)

	// ListSessions returns the IDs of all stored sessions.
	ListSessions() ([]string, error)

	// DeleteSession removes a session. Idempotent.
	DeleteSession(id string) error

	// Close releases the underlying store.
	Close() error
}
