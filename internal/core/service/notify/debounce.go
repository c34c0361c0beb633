package notify

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one call to fire. Every
// Trigger resets the timer; fire runs once the quiet window elapses
// with no further triggers.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	fire   func()
}

// NewDebouncer creates a stopped debouncer; nothing fires until the
// first Trigger.
func NewDebouncer(window time.Duration, fire func()) *Debouncer {
	return &Debouncer{window: window, fire: fire}
}

// Trigger arms or re-arms the quiet-period timer.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fire)
		return
	}
	d.timer.Reset(d.window)
}

// Stop cancels any pending fire.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
