package sim

import "time"

// SecurityStatus is the standing state shown in the security panel.
type SecurityStatus struct {
	FirewallActive    bool
	MalwareProtection bool
	LastScan          time.Time
}

// ScanResult is the outcome of one simulated security scan.
type ScanResult struct {
	ThreatsFound int
	Message      string
	CompletedAt  time.Time
}

// SecurityScanDelay is the fixed latency of a scan, longer than the usual
// simulated round-trip.
const SecurityScanDelay = 3 * time.Second

// Status reports the canned security posture; the last scan always reads
// two hours old.
func (e *Engine) Status() SecurityStatus {
	return SecurityStatus{
		FirewallActive:    true,
		MalwareProtection: true,
		LastScan:          e.now().Add(-2 * time.Hour),
	}
}

// Scan completes with a clean result. No input, no failure mode.
func (e *Engine) Scan() ScanResult {
	return ScanResult{
		ThreatsFound: 0,
		Message:      "Security scan completed - No threats detected!",
		CompletedAt:  e.now(),
	}
}
