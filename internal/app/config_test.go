package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != ThemeLight || cfg.SimMinDelayMs != 1000 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	in := DefaultConfig()
	in.Theme = ThemeDark
	in.DefaultLocation = "Tokyo"
	in.AutomationInterval = 15
	if err := SaveConfig(in, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.Theme != ThemeDark || out.DefaultLocation != "Tokyo" || out.AutomationInterval != 15 {
		t.Fatalf("out = %+v", out)
	}
}

func TestLoadConfigClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	raw := "theme: neon\nsim_min_delay_ms: -5\nsim_max_delay_ms: 10\nautomation_interval_sec: 0\ndefault_location: \"\"\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.SimMinDelayMs != 1000 || cfg.SimMaxDelayMs != 1000 {
		t.Fatalf("delays = %d/%d, want 1000/1000", cfg.SimMinDelayMs, cfg.SimMaxDelayMs)
	}
	if cfg.AutomationInterval != 30 {
		t.Fatalf("AutomationInterval = %d, want 30", cfg.AutomationInterval)
	}
	if cfg.DefaultLocation == "" {
		t.Fatal("DefaultLocation left empty")
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("theme: [broken"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed yaml did not error")
	}
}
