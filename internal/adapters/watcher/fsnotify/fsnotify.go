package fsnotify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher is a struct to forward raw filesystem change events into the
// change notifier. The notifier owns the debouncing; this adapter only
// reports that something changed.
type Watcher struct {
	logger *slog.Logger
	fw     *fsnotify.Watcher
	wg     sync.WaitGroup
}

// NewWatcher creates a new filesystem watcher
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	return &Watcher{logger: logger, fw: fw}, nil
}

// Watch registers dir and invokes onChange for every raw event until
// the context is cancelled or the watcher is closed. Watch errors are
// logged and never terminate the server.
func (w *Watcher) Watch(ctx context.Context, dir string, onChange func()) error {
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.logger.Info("filesystem watch started", "dir", dir)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("filesystem watch stopped")
				return
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				w.logger.Debug("filesystem event", "op", ev.Op.String(), "name", ev.Name)
				onChange()
			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("filesystem watch error", "error", err)
			}
		}
	}()
	return nil
}

// Close graceful shutdown
func (w *Watcher) Close() error {
	err := w.fw.Close()
	w.wg.Wait()
	return err
}
