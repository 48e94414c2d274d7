// Package watch re-runs a callback when watched description files change.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a fixed set of files and invokes the callback on every
// write or create, debounced per path. Parent directories are watched so
// editors that replace files atomically are still observed.
type Watcher struct {
	fsw      *fsnotify.Watcher
	paths    map[string]bool
	last     map[string]time.Time
	debounce time.Duration
	onChange func(path string)
	logger   *log.Logger
}

// New prepares a watcher over paths. Run must be called to start delivery.
func New(paths []string, onChange func(path string), logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	w := &Watcher{
		fsw:      fsw,
		paths:    make(map[string]bool, len(paths)),
		last:     make(map[string]time.Time, len(paths)),
		debounce: 50 * time.Millisecond,
		onChange: onChange,
		logger:   logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		w.paths[filepath.Clean(p)] = true
		dirs[filepath.Dir(filepath.Clean(p))] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run delivers change events until ctx is cancelled or the watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			path := filepath.Clean(event.Name)
			if !w.paths[path] {
				continue
			}
			now := time.Now()
			if now.Sub(w.last[path]) < w.debounce {
				continue
			}
			w.last[path] = now
			w.onChange(path)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
