package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// Store is a namespaced key-value store over the local filesystem: the
// client's durable stand-in for browser local storage. Each key maps to one
// JSON document under the base directory.
type Store struct {
	dir string
}

// NewStore creates the base directory if missing.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get reads and decodes the value stored under key into out.
// A missing or corrupt document reports false and leaves out untouched
// where possible; it is never an error the caller has to handle.
func (s *Store) Get(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}

// Set encodes value and writes it under key. The write goes through a
// temp file plus rename so a crash cannot leave a half-written document.
func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Absent keys are a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, safeKey(key)+".json")
}

func safeKey(key string) string {
	key = filepath.Base(key)
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	key = strings.TrimSpace(key)
	if key == "" {
		return "state"
	}
	return key
}
