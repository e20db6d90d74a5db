// Package watch regenerates a worksheet whenever its settings file changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit per save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher calls OnChange after each write to a single file.
type Watcher struct {
	path     string
	onChange func() error

	// OnError receives OnChange failures and watcher errors. Watching
	// continues after it returns. Defaults to logging.
	OnError func(error)

	// Debounce is the quiet period required before OnChange fires.
	Debounce time.Duration

	ready chan struct{}
}

// New creates a Watcher for path.
func New(path string, onChange func() error) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		onChange: onChange,
		OnError: func(err error) {
			log.Printf("[watch] %v", err)
		},
		Debounce: DefaultDebounce,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the file system watch is in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. The parent directory is watched so
// that editors replacing the file by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Printf("[watch] watching %s", w.path)
	close(w.ready)

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Printf("[watch] %s", event)
			timer.Reset(w.Debounce)

		case <-timer.C:
			if err := w.onChange(); err != nil {
				w.OnError(err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.OnError(fmt.Errorf("file watcher: %w", err))
		}
	}
}
