package controller

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

// DefaultToastDuration is how long a notification stays visible.
const DefaultToastDuration = 3 * time.Second

// Notifier holds at most one notification and clears it after a fixed duration.
// A newer Show supersedes the current notification and its pending expiry.
type Notifier struct {
	clock    clock.WithDelayedExecution
	duration time.Duration
	onChange func()

	mu      sync.Mutex
	token   uint64
	current *Notification
	timer   clock.Timer
	closed  bool
}

// NewNotifier creates a notifier. onChange, if set, is called after an
// expiry clears the notification. It runs on the clock's goroutine.
func NewNotifier(clk clock.WithDelayedExecution, duration time.Duration, onChange func()) *Notifier {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	return &Notifier{clock: clk, duration: duration, onChange: onChange}
}

// Duration returns how long notifications stay visible.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// Show replaces the current notification and arms its expiry.
// A closed notifier ignores it and returns the zero Notification.
func (n *Notifier) Show(message string, kind Kind) Notification {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return Notification{}
	}
	n.token++
	note := Notification{Message: message, Kind: kind, Token: n.token}
	n.current = &note
	prev := n.timer
	n.timer = nil
	n.mu.Unlock()

	// The clock is never called with n.mu held: a fake clock runs expiry
	// callbacks under its own lock.
	if prev != nil {
		prev.Stop()
	}
	t := n.clock.AfterFunc(n.duration, func() { n.expire(note.Token) })

	n.mu.Lock()
	superseded := n.token != note.Token || n.closed
	if !superseded {
		n.timer = t
	}
	n.mu.Unlock()
	if superseded {
		t.Stop()
	}

	return note
}

// Current returns a copy of the visible notification, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	note := *n.current
	return &note
}

// Stop cancels any pending expiry. The current notification is kept.
func (n *Notifier) Stop() {
	n.mu.Lock()
	t := n.timer
	n.timer = nil
	n.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

// Close cancels any pending expiry and makes later Show calls no-ops.
func (n *Notifier) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()
	n.Stop()
}

// expire clears the notification only if it is still the one armed with token.
func (n *Notifier) expire(token uint64) {
	n.mu.Lock()
	cleared := n.current != nil && n.current.Token == token
	if cleared {
		n.current = nil
		n.timer = nil
	}
	n.mu.Unlock()

	if cleared && n.onChange != nil {
		n.onChange()
	}
}
