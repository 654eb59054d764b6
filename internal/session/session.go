// Package session persists the single active username between runs.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/logger"
)

// Store is a single-slot, file-backed session pointer. There is at most one
// logged-in user per data directory; concurrent writers are last-write-wins.
type Store struct {
	path string
}

type sessionFile struct {
	Username string `json:"username"`
}

// NewStore creates a session store rooted at the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{
		path: filepath.Join(dataDir, constants.SessionFileName),
	}
}

// Save persists username as the active session, overwriting any prior value.
func (s *Store) Save(username string) error {
	if username == "" {
		return fmt.Errorf("cannot save an empty username")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.MarshalIndent(sessionFile{Username: username}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load returns the persisted username, or "" when no session exists. An
// unreadable or malformed session file is treated as absent, not an error;
// the next login simply overwrites it.
func (s *Store) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Session file unreadable, treating as logged out", "path", s.path, "error", err)
		}
		return ""
	}
	var sf sessionFile
	if err := json.Unmarshal(data, &sf); err != nil {
		logger.Warn("Session file malformed, treating as logged out", "path", s.path, "error", err)
		return ""
	}
	return sf.Username
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op, not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Path returns the location of the session file.
func (s *Store) Path() string {
	return s.path
}
