package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Theme              string `yaml:"theme"`
	StorageRoot        string `yaml:"storage_root"`
	ExportDir          string `yaml:"export_dir"`
	SimMinDelayMs      int    `yaml:"sim_min_delay_ms"`
	SimMaxDelayMs      int    `yaml:"sim_max_delay_ms"`
	AutomationInterval int    `yaml:"automation_interval_sec"`
	DefaultLocation    string `yaml:"default_location"`
	VoiceEnabled       bool   `yaml:"voice_enabled"`
	ReduceMotion       bool   `yaml:"reduce_motion"`
}

func DefaultConfig() Config {
	return Config{
		Theme:              "light",
		SimMinDelayMs:      1000,
		SimMaxDelayMs:      2500,
		AutomationInterval: 30,
		DefaultLocation:    "New Delhi, India",
		VoiceEnabled:       true,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Theme != ThemeLight && cfg.Theme != ThemeDark {
		cfg.Theme = ThemeLight
	}
	if cfg.SimMinDelayMs <= 0 {
		cfg.SimMinDelayMs = 1000
	}
	if cfg.SimMaxDelayMs < cfg.SimMinDelayMs {
		cfg.SimMaxDelayMs = cfg.SimMinDelayMs
	}
	if cfg.AutomationInterval <= 0 {
		cfg.AutomationInterval = 30
	}
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = "New Delhi, India"
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "futuristic-aid", "config.yml")
}
