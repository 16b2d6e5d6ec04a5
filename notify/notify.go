// Package notify holds the single-slot toast shown by the site UI. At most
// one message is visible at a time; a new message replaces the current one
// and the replaced message is never shown again.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a toast stays visible before auto-hiding.
const DefaultDuration = 3 * time.Second

// Notifier is the transient message slot. The generation counter ties each
// auto-hide timer to the message that scheduled it, so a superseded
// message's timer cannot hide its successor early.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	message  string
	visible  bool
	gen      uint64
}

// New returns a Notifier whose messages auto-hide after d.
func New(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Notifier{duration: d}
}

// Show replaces the current message and schedules its auto-hide.
func (n *Notifier) Show(message string) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.message = message
	n.visible = true
	n.mu.Unlock()

	time.AfterFunc(n.duration, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen != gen {
			// A newer message owns the slot now.
			return
		}
		n.message = ""
		n.visible = false
	})
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.visible
}
