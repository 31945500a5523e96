// Package watch provides a file watcher backed by fsnotify.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to a single file.
// The parent directory is watched so that atomic replace-on-save is seen.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher with the given debounce window (0 uses DefaultDebounce).
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch starts watching path and returns once the watch is established.
// onChange runs on a background goroutine after each debounced write,
// create or rename of path, until ctx is done.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func(), onError func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	go w.loop(ctx, fsw, abs, onChange, onError)
	return nil
}

func (w *Watcher) loop(
	ctx context.Context,
	fsw *fsnotify.Watcher,
	target string,
	onChange func(),
	onError func(error),
) {
	defer fsw.Close()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() == nil {
					onChange()
				}
			})
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
