package sim

import (
	"testing"
	"time"
)

func TestSecurityStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngine(1, WithClock(fixedClock(now)))

	status := e.Status()
	if !status.FirewallActive || !status.MalwareProtection {
		t.Fatalf("status = %+v", status)
	}
	if !status.LastScan.Equal(now.Add(-2 * time.Hour)) {
		t.Fatalf("LastScan = %v, want two hours ago", status.LastScan)
	}
}

func TestSecurityScan(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewEngine(1, WithClock(fixedClock(now)))

	r := e.Scan()
	if r.ThreatsFound != 0 {
		t.Fatalf("ThreatsFound = %d", r.ThreatsFound)
	}
	if r.Message != "Security scan completed - No threats detected!" {
		t.Fatalf("Message = %q", r.Message)
	}
	if !r.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v", r.CompletedAt)
	}
}
