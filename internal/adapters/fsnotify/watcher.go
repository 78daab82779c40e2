// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches a flat batch drop directory,
// filters out hidden and partial files, and debounces rapid events
// (uploaders and editors often trigger multiple writes per file).
package fsnotify

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// File suffixes that indicate an in-progress transfer.
var partialSuffixes = []string{".part", ".tmp", ".swp", ".crdownload"}

const debounceInterval = 200 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex

	// Debounce state: one pending timer per path. Stop cancels these so
	// no callback fires after it returns.
	pending   map[string]*time.Timer
	pendingMu sync.Mutex
}

// NewWatcher creates a new drop-directory watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:      fw,
		done:    make(chan struct{}),
		pending: make(map[string]*time.Timer),
	}, nil
}

// Watch starts monitoring dir. onFile is called with the absolute path of
// each newly created or rewritten file, after the debounce window has
// passed without further writes to it.
func (w *Watcher) Watch(dir string, onFile func(path string)) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := w.fw.Add(absDir); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
					continue
				}
				if shouldIgnoreFile(ev.Name) {
					continue
				}
				path := ev.Name
				w.pendingMu.Lock()
				if timer, exists := w.pending[path]; exists {
					timer.Stop()
				}
				w.pending[path] = time.AfterFunc(debounceInterval, func() {
					w.pendingMu.Lock()
					delete(w.pending, path)
					w.pendingMu.Unlock()
					select {
					case <-w.done:
						return
					default:
					}
					onFile(path)
				})
				w.pendingMu.Unlock()
			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient; keep watching.
			}
		}
	}()
	return nil
}

// Stop ends monitoring. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	w.pendingMu.Lock()
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.pendingMu.Unlock()
	return w.fw.Close()
}

// shouldIgnoreFile reports whether a path is hidden or an in-progress
// transfer artifact.
func shouldIgnoreFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, suffix := range partialSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}
