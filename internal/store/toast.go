package store

import (
	"sync"
	"time"
)

// DefaultToastDuration matches the web client's 2s auto-hide.
const DefaultToastDuration = 2 * time.Second

// Toast shows at most one ephemeral message at a time. Every Show
// cancels the pending auto-hide before scheduling the next one, so two
// timers can never fight over the visible message. A sequence number
// guards against a timer that already fired racing a newer Show.
type Toast struct {
	mu      sync.Mutex
	message string
	timer   *time.Timer
	seq     uint64
	expired chan struct{}
}

// NewToast returns an empty toast store.
func NewToast() *Toast {
	return &Toast{expired: make(chan struct{}, 1)}
}

// Message returns the visible text, or "" when hidden.
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Visible reports whether a message is showing.
func (t *Toast) Visible() bool {
	return t.Message() != ""
}

// Expired signals each auto-hide so the view can re-render. The channel
// is buffered; an unread notification is coalesced, never blocking.
func (t *Toast) Expired() <-chan struct{} {
	return t.expired
}

// Show displays message and schedules its auto-hide after duration,
// preempting any pending hide.
func (t *Toast) Show(message string, duration time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.seq++
	t.message = message

	seq := t.seq
	t.timer = time.AfterFunc(duration, func() {
		t.expire(seq)
	})
}

func (t *Toast) expire(seq uint64) {
	t.mu.Lock()
	if seq != t.seq {
		// A newer Show superseded this timer after it fired.
		t.mu.Unlock()
		return
	}
	t.message = ""
	t.timer = nil
	t.mu.Unlock()

	select {
	case t.expired <- struct{}{}:
	default:
	}
}

// Hide clears the message and cancels any pending auto-hide.
func (t *Toast) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
	t.message = ""
}
