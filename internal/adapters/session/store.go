// Package session persists the authentication session across restarts.
package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// FileStore implements secondary.SessionStore with a JSON file in the data
// directory. Writes are atomic so an interrupted save never corrupts the
// persisted session.
type FileStore struct {
	path string
}

// NewFileStore creates a session store rooted at the given data directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, "session.json")}
}

// Load returns the persisted session, or nil when logged out.
func (s *FileStore) Load() (*models.Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &sess, nil
}

// Save durably replaces the persisted session.
func (s *FileStore) Save(sess *models.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing when none exists is fine.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Ensure FileStore implements the interface
var _ secondary.SessionStore = (*FileStore)(nil)
