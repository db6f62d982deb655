package tui

import (
	"testing"
	"time"
)

func TestNotifierLifecycle(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	n := NewNotifier(clock)

	notif := n.Push("saved", SevSuccess)
	if notif.ID == "" || notif.Severity != SevSuccess {
		t.Fatalf("notification = %+v", notif)
	}
	if len(n.Active()) != 1 {
		t.Fatalf("active = %d, want 1", len(n.Active()))
	}
	if n.Exiting(notif) {
		t.Fatal("fresh notification already exiting")
	}

	// Still visible just inside the display window.
	now = now.Add(notifyVisible - time.Millisecond)
	if !n.Prune() {
		t.Fatal("Prune dropped a live notification")
	}
	if n.Exiting(notif) {
		t.Fatal("notification exiting before its time")
	}

	// Visible window over: entry enters the exit phase but stays listed.
	now = now.Add(2 * time.Millisecond)
	if !n.Prune() {
		t.Fatal("Prune dropped an exiting notification")
	}
	if !n.Exiting(notif) {
		t.Fatal("notification should be in its exit phase")
	}

	// Exit phase over: entry is gone and Prune reports nothing left.
	now = now.Add(notifyExit)
	if n.Prune() {
		t.Fatal("Prune kept an expired notification")
	}
	if len(n.Active()) != 0 {
		t.Fatalf("active = %d, want 0", len(n.Active()))
	}
}

func TestNotifierStacksInOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := NewNotifier(func() time.Time { return now })

	n.Push("first", SevInfo)
	now = now.Add(time.Second)
	n.Push("second", SevError)

	active := n.Active()
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	if active[0].Message != "first" || active[1].Message != "second" {
		t.Fatalf("order = %q, %q", active[0].Message, active[1].Message)
	}
	if active[0].ID == active[1].ID {
		t.Fatal("notifications share an id")
	}
}
