package domain

// EventType represents a token pushed to an open event stream
type EventType string

const (
	// EventConnected is pushed once when a stream opens
	EventConnected EventType = "connected"
	// EventRefresh tells clients to reload their file listing
	EventRefresh EventType = "refresh"
)
