package fsnotify_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ccheever/cho-upload/internal/adapters/watcher/fsnotify"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestWatcher_Watch(t *testing.T) {
	t.Run("a file write triggers onChange", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		w, err := fsnotify.NewWatcher(discardLogger)
		require.NoError(t, err)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var changes atomic.Int32
		require.NoError(t, w.Watch(ctx, dir, func() { changes.Add(1) }))

		// Act
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

		// Assert
		require.Eventually(t, func() bool { return changes.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("watching a missing directory fails", func(t *testing.T) {
		// Arrange
		w, err := fsnotify.NewWatcher(discardLogger)
		require.NoError(t, err)
		defer w.Close()

		// Act / Assert
		err = w.Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), func() {})
		require.Error(t, err)
	})
}
