package port

import (
	"github.com/ccheever/cho-upload/internal/core/domain"
	"github.com/google/uuid"
)

// PushFunc delivers one event token to a single subscriber. A non-nil
// error marks the subscriber's stream as broken.
type PushFunc func(event domain.EventType) error

// ChangeNotifier is an interface to define the refresh fan-out registry
type ChangeNotifier interface {
	// Subscribe registers a push callback for the lifetime of one open
	// event stream and returns its identity.
	Subscribe(push PushFunc) uuid.UUID
	// Unsubscribe removes a subscriber. Safe to call more than once.
	Unsubscribe(id uuid.UUID)
	// Signal requests a debounced refresh broadcast. A burst of signals
	// inside the quiet period collapses into one broadcast.
	Signal()
}
