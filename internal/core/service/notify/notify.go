package notify

import (
	"log/slog"
	"time"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// Notifier combines the subscriber hub with a debounced refresh
// broadcast. Both the upload handler and the filesystem watcher feed
// Signal, so one upload burst produces a single refresh.
type Notifier struct {
	*Hub
	debounce *Debouncer
}

// NewNotifier creates a notifier whose broadcasts fire after the given
// quiet window.
func NewNotifier(window time.Duration, logger *slog.Logger) *Notifier {
	hub := NewHub(logger)
	return &Notifier{
		Hub:      hub,
		debounce: NewDebouncer(window, func() { hub.Broadcast(domain.EventRefresh) }),
	}
}

// Signal requests a debounced refresh broadcast.
func (n *Notifier) Signal() {
	n.debounce.Trigger()
}

// Close cancels any pending broadcast.
func (n *Notifier) Close() {
	n.debounce.Stop()
}
