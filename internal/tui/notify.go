package tui

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification.
type Severity string

const (
	SevInfo    Severity = "info"
	SevSuccess Severity = "success"
	SevWarning Severity = "warning"
	SevError   Severity = "error"
)

// Notification durations: visible time, then a short exit phase rendered
// dimmed before removal.
const (
	notifyVisible = 3 * time.Second
	notifyExit    = 300 * time.Millisecond
)

// Notification is one transient stacked message.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	ShownAt  time.Time
}

// Notifier keeps the stack of live notifications. Each Push renders its
// own entry immediately; there is no queueing or rate limiting.
type Notifier struct {
	active []Notification
	now    func() time.Time
}

// NewNotifier uses the given clock; tests pass a fake.
func NewNotifier(now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{now: now}
}

// Push adds a notification to the stack.
func (n *Notifier) Push(message string, sev Severity) Notification {
	notif := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: sev,
		ShownAt:  n.now(),
	}
	n.active = append(n.active, notif)
	return notif
}

// Prune drops notifications whose exit phase has finished and reports
// whether any remain (so the caller knows to keep ticking).
func (n *Notifier) Prune() bool {
	now := n.now()
	kept := n.active[:0]
	for _, notif := range n.active {
		if now.Sub(notif.ShownAt) < notifyVisible+notifyExit {
			kept = append(kept, notif)
		}
	}
	n.active = kept
	return len(n.active) > 0
}

// Active returns the live notifications, oldest first.
func (n *Notifier) Active() []Notification {
	return n.active
}

// Exiting reports whether a notification is in its exit phase and should
// render dimmed.
func (n *Notifier) Exiting(notif Notification) bool {
	return n.now().Sub(notif.ShownAt) >= notifyVisible
}
