// Package bbolt implements the ports.CheckpointStore interface using bbolt
// (embedded B+ tree). Sessions live in a single bucket keyed by session ID,
// JSON-serialized. Writes are transactional — a crash mid-write cannot
// corrupt previously committed sessions.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/seam/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketSessions = []byte("sessions")

// Store implements ports.CheckpointStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession persists the full session, overwriting prior state.
func (s *Store) SaveSession(sess *ports.StitchSession) error {
	if sess == nil || sess.ID == "" {
		return fmt.Errorf("nil or unnamed session")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSessions)
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
		return b.Put([]byte(sess.ID), data)
	})
}

// LoadSession retrieves a session by ID. Returns nil, nil when the session
// does not exist.
func (s *Store) LoadSession(id string) (*ports.StitchSession, error) {
	var sess *ports.StitchSession
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)
		if b == nil {
			return nil
		}
		data := b.Get([]byte(id))
		if data == nil {
			return nil
		}
		sess = &ports.StitchSession{}
		if err := json.Unmarshal(data, sess); err != nil {
			return fmt.Errorf("unmarshal session %q: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// ListSessions returns the IDs of all stored sessions.
func (s *Store) ListSessions() ([]string, error) {
	var ids []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteSession removes a session. Deleting a nonexistent session is not
// an error.
func (s *Store) DeleteSession(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSessions)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(id))
	})
}
