package scenario

import (
	"os"
	"time"
)

// Watcher polls the scenarios file's modification time and invalidates the
// loader's cache when it changes. It uses only the standard library for
// simplicity.
type Watcher struct {
	loader   *Loader
	interval time.Duration
	onReload func(path string) // optional, called after invalidation
	stopCh   chan struct{}
	last     time.Time
}

// NewWatcher creates a watcher bound to the given loader.
func NewWatcher(l *Loader, interval time.Duration, onReload func(string)) *Watcher {
	return &Watcher{
		loader:   l,
		interval: interval,
		onReload: onReload,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		// prime the cached mtime
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// scan checks the mtime and invalidates the loader when it moved forward.
func (w *Watcher) scan(prime bool) {
	fi, err := os.Stat(w.loader.Path())
	if err != nil {
		// missing file surfaces on the next Load, not here
		return
	}
	mt := fi.ModTime()
	if w.last.IsZero() {
		w.last = mt
		return
	}
	if mt.After(w.last) {
		w.last = mt
		if !prime {
			w.loader.Invalidate()
			if w.onReload != nil {
				w.onReload(w.loader.Path())
			}
		}
	}
}
