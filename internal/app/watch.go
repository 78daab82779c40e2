package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/corey/seam/internal/domain/textmatch"
	"github.com/corey/seam/internal/ports"
)

// JoinEvent reports one batch applied to a watched session.
type JoinEvent struct {
	BatchName string
	Match     textmatch.OverlapMatch
	Err       error
}

// DropWatcher feeds batch files from a drop directory into a stitch
// session: first everything already present (in lexical order), then new
// arrivals as the watcher reports them. Batches already recorded in the
// session are skipped, so restarting the watch does not re-apply them.
type DropWatcher struct {
	mgr     *SessionManager
	watcher ports.Watcher
}

// NewDropWatcher wires a session manager to a filesystem watcher.
func NewDropWatcher(mgr *SessionManager, watcher ports.Watcher) *DropWatcher {
	return &DropWatcher{mgr: mgr, watcher: watcher}
}

// Run ingests existing files, then watches for new ones until the watcher
// is stopped. Every applied batch is reported on the returned channel.
// Ingestion happens on its own goroutine so the caller can start draining
// the channel immediately; a directory holding more batches than the
// channel buffers must not stall startup. The filesystem watch is
// registered only after the backlog is applied, so existing files and
// arrivals never race on the session.
func (d *DropWatcher) Run(sess *ports.StitchSession, dir string) (<-chan JoinEvent, error) {
	events := make(chan JoinEvent, 16)

	existing, err := listBatchFiles(dir)
	if err != nil {
		return nil, err
	}

	go func() {
		for _, path := range existing {
			d.ingest(sess, path, events)
		}
		err := d.watcher.Watch(dir, func(path string) {
			d.ingest(sess, path, events)
		})
		if err != nil {
			events <- JoinEvent{Err: fmt.Errorf("watch %s: %w", dir, err)}
		}
	}()
	return events, nil
}

// ingest applies one batch file to the session.
func (d *DropWatcher) ingest(sess *ports.StitchSession, path string, events chan<- JoinEvent) {
	name := filepath.Base(path)
	if d.mgr.Seen(sess, name) {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		events <- JoinEvent{BatchName: name, Err: fmt.Errorf("read batch %s: %w", name, err)}
		return
	}
	match, err := d.mgr.Append(sess, name, string(data))
	events <- JoinEvent{BatchName: name, Match: match, Err: err}
}

// listBatchFiles returns the regular, non-hidden files in dir, sorted by
// name so numbered batches apply in order.
func listBatchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read drop dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || e.Name()[0] == '.' {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
