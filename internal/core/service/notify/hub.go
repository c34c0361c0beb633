package notify

import (
	"log/slog"
	"sync"

	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/ccheever/cho-upload/internal/core/port"
	"github.com/google/uuid"
)

// Hub is the in-process registry of event-stream subscribers. It is
// owned by the server instance and passed by reference to connection
// handlers; there is no process-global state.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]port.PushFunc
	logger *slog.Logger
}

// NewHub creates an empty subscriber registry
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uuid.UUID]port.PushFunc),
		logger: logger,
	}
}

// Subscribe registers a push callback and returns its identity.
func (h *Hub) Subscribe(push port.PushFunc) uuid.UUID {
	id := uuid.New()
	h.mu.Lock()
	h.subs[id] = push
	h.mu.Unlock()
	h.logger.Info("subscriber registered", "id", id)
	return id
}

// Unsubscribe removes a subscriber. Safe to call more than once.
func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	_, ok := h.subs[id]
	delete(h.subs, id)
	h.mu.Unlock()
	if ok {
		h.logger.Info("subscriber removed", "id", id)
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Broadcast pushes the event to every active subscriber. Delivery is
// best-effort and unordered: a subscriber whose push fails is logged
// and removed rather than retried, so broken streams cannot accumulate.
func (h *Hub) Broadcast(event domain.EventType) {
	h.mu.Lock()
	snapshot := make(map[uuid.UUID]port.PushFunc, len(h.subs))
	for id, push := range h.subs {
		snapshot[id] = push
	}
	h.mu.Unlock()

	for id, push := range snapshot {
		if err := push(event); err != nil {
			h.logger.Warn("failed to push event, removing subscriber", "id", id, "error", err)
			h.Unsubscribe(id)
		}
	}
}
