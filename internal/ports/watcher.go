package ports

// Watcher monitors a batch drop directory for new files. The adapter
// (fsnotify) must debounce editor/write churn and filter out hidden and
// partial files before invoking onFile. Only one Watch call should be
// active at a time.
type Watcher interface {
	// Watch starts monitoring dir (non-recursively). onFile is called
	// with the absolute path of each newly arrived or rewritten file.
	// The callback may be invoked from any goroutine. Returns an error
	// if the directory doesn't exist or permissions are insufficient.
	Watch(dir string, onFile func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop
	// returns, no further onFile calls will fire. Safe to call multiple
	// times.
	Stop() error
}
