package upload

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ccheever/cho-upload/internal/core/domain"
)

// heartbeatInterval keeps idle streams alive through proxies and the
// server's own idle-connection handling.
const heartbeatInterval = 20 * time.Second

// EventsV1 opens a long-lived server-sent event stream. The subscriber
// is pushed "connected" once, then "refresh" on every broadcast, and is
// deregistered on every exit path: normal close, client abort or a
// failed push. An overflowing queue also closes the stream, so a stalled
// client reconnects instead of idling on heartbeats with no refreshes.
func (h *HandlerV1) EventsV1(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events := make(chan domain.EventType, 8)
	lost := make(chan struct{})
	var lostOnce sync.Once
	id := h.notifier.Subscribe(func(event domain.EventType) error {
		select {
		case events <- event:
			return nil
		default:
			lostOnce.Do(func() { close(lost) })
			return errors.New("subscriber queue full")
		}
	})
	defer h.notifier.Unsubscribe(id)

	fmt.Fprintf(w, "data: %s\n\n", domain.EventConnected)
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case event := <-events:
			if _, err := fmt.Fprintf(w, "data: %s\n\n", event); err != nil {
				return
			}
			flusher.Flush()
		case <-ticker.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		case <-lost:
			return
		case <-r.Context().Done():
			return
		}
	}
}
