package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Preference keys. Values are JSON blobs, one file per key.
const (
	KeyTheme       = "theme"
	KeyCurrentUser = "currentUser"
	KeyChatHistory = "chatHistory"
	KeyAutomations = "automations"
	KeyEvents      = "events"
)

// PrefStore persists string-keyed JSON blobs on disk.
//
// Layout:
//
//	<root>/prefs/<key>.json
//
// A corrupt entry never fails a read: the file is quarantined with a
// .corrupt suffix and the caller keeps its default.
type PrefStore struct {
	Root string
}

// DefaultStorageRoot follows XDG data conventions with a home fallback.
func DefaultStorageRoot() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "futuristic-aid")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "futuristic-aid")
	}
	return filepath.Join(os.TempDir(), "futuristic-aid")
}

// NewPrefStore returns a store rooted at root, or the default root when
// root is empty.
func NewPrefStore(root string) *PrefStore {
	if strings.TrimSpace(root) == "" {
		root = DefaultStorageRoot()
	}
	return &PrefStore{Root: root}
}

func (s *PrefStore) prefsDir() string {
	return filepath.Join(s.Root, "prefs")
}

func (s *PrefStore) path(key string) string {
	return filepath.Join(s.prefsDir(), key+".json")
}

// Load reads the value stored under key into v. It returns false when no
// usable value exists; the caller's zero value or default stands. A file
// that fails to parse is moved aside rather than returned as an error.
func (s *PrefStore) Load(key string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		// Quarantine instead of failing; state recovers to defaults.
		_ = os.Rename(s.path(key), s.path(key)+".corrupt")
		return false, nil
	}
	return true, nil
}

// Set serializes v under key, creating the store directory on first use.
func (s *PrefStore) Set(key string, v any) error {
	if err := os.MkdirAll(s.prefsDir(), 0755); err != nil {
		return fmt.Errorf("prefs dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value under key. Removing an absent key is not an
// error.
func (s *PrefStore) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
