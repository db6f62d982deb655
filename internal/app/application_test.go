package app

import (
	"testing"
	"time"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.StorageRoot = t.TempDir()
	cfg.ExportDir = t.TempDir()
	return cfg
}

func TestNewApplicationRestoresState(t *testing.T) {
	cfg := testConfig(t)

	a, err := NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	defer a.Close()

	if _, err := a.Auth.Login("eve@example.com", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := a.History.Append("hello", "user"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := a.Automations.Create("Job", TriggerManual); err != nil {
		t.Fatalf("Create: %v", err)
	}

	b, err := NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("second NewApplication: %v", err)
	}
	defer b.Close()

	if u := b.State.CurrentUser(); u == nil || u.Email != "eve@example.com" {
		t.Fatalf("restored user = %+v", u)
	}
	if len(b.History.Messages()) != 1 {
		t.Fatalf("restored %d messages", len(b.History.Messages()))
	}
	if len(b.Automations.Tasks()) != 1 {
		t.Fatalf("restored %d tasks", len(b.Automations.Tasks()))
	}
}

func TestEngineLatencyFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SimMinDelayMs = 42
	cfg.SimMaxDelayMs = 42

	a, err := NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	defer a.Close()

	if d := a.Engine.Latency(); d != 42*time.Millisecond {
		t.Fatalf("Latency = %v, want the configured 42ms", d)
	}
}

func TestToggleThemePersists(t *testing.T) {
	cfg := testConfig(t)

	a, err := NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	defer a.Close()

	theme, err := a.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if theme != ThemeDark {
		t.Fatalf("theme = %q, want dark", theme)
	}

	// The persisted theme wins over the config default on the next start.
	b, err := NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("second NewApplication: %v", err)
	}
	defer b.Close()
	if b.State.Theme() != ThemeDark {
		t.Fatalf("restored theme = %q, want dark", b.State.Theme())
	}
}
