// Package watcher reloads the datasets when their CSV files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"paper-insights/internal/domain/ports"
)

// DefaultDebounce coalesces the burst of events an editor or copy produces.
const DefaultDebounce = 250 * time.Millisecond

// Refresher reloads the datasets.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Watcher triggers a refresh when one of the watched files is written,
// created or renamed.
type Watcher struct {
	dir       string
	files     map[string]struct{}
	refresher Refresher
	logger    ports.Logger
	debounce  time.Duration
}

// New watches the directory holding paths. All paths are expected to share
// one directory; the first one decides which.
func New(paths []string, refresher Refresher, logger ports.Logger, debounce time.Duration) *Watcher {
	files := make(map[string]struct{}, len(paths))
	dir := "."
	for i, p := range paths {
		if i == 0 {
			dir = filepath.Dir(p)
		}
		files[filepath.Base(p)] = struct{}{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:       dir,
		files:     files,
		refresher: refresher,
		logger:    logger,
		debounce:  debounce,
	}
}

// Run watches until ctx is cancelled. Refreshes run with ctx.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info(ctx, "watching data directory", "dir", w.dir)

	var (
		mu       sync.Mutex
		timer    *time.Timer
		inflight sync.WaitGroup
	)
	defer func() {
		mu.Lock()
		if timer != nil && timer.Stop() {
			inflight.Done()
		}
		mu.Unlock()
		inflight.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			mu.Lock()
			if timer != nil && timer.Stop() {
				inflight.Done()
			}
			inflight.Add(1)
			name := event.Name
			timer = time.AfterFunc(w.debounce, func() {
				defer inflight.Done()
				w.logger.Info(ctx, "data file changed, refreshing", "file", name)
				if err := w.refresher.Refresh(ctx); err != nil {
					w.logger.Error(ctx, "refresh after file change failed", "error", err)
				}
			})
			mu.Unlock()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(ctx, "watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.files[filepath.Base(event.Name)]
	return ok
}
