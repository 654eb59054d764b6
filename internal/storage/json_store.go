package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/models"
)

// JSONStore keeps one "<username>_data.json" document per user inside a
// data directory. It is the default backend and matches the file layout the
// desktop application used.
type JSONStore struct {
	dir string
}

func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{
		dir: dataDir,
	}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// Load ensures the data directory exists. Per-user files are read on
// demand, so a fresh directory is a valid, empty store.
func (s *JSONStore) Load() error {
	return s.Init()
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) historyPath(username string) string {
	return filepath.Join(s.dir, username+constants.HistoryFileSuffix)
}

// AppendEntry loads the user's full history, appends entry and persists the
// whole sequence back. The write goes to a temporary file first and is
// renamed into place so a crash mid-write cannot truncate prior history.
func (s *JSONStore) AppendEntry(username string, entry models.Entry) error {
	if err := CheckUsername(username); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("refusing to append malformed entry: %w", err)
	}

	history, err := s.GetHistory(username)
	if err != nil {
		return err
	}
	history = append(history, entry)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := s.historyPath(username)
	tmp, err := os.CreateTemp(s.dir, username+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary history file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set history file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file: %w", err)
	}
	return nil
}

// GetHistory returns the user's entries in insertion order. A username with
// no persisted file yet yields an empty history, not an error. A file that
// exists but cannot be parsed or validated yields ErrCorruptStorage.
func (s *JSONStore) GetHistory(username string) ([]models.Entry, error) {
	if err := CheckUsername(username); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.historyPath(username))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read history for %s: %w", username, err)
	}

	var history []models.Entry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: history for %s is not valid JSON: %v", ErrCorruptStorage, username, err)
	}
	for i, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d for %s: %v", ErrCorruptStorage, i, username, err)
		}
	}
	return history, nil
}

// ListUsernames returns every username with a persisted history, sorted.
func (s *JSONStore) ListUsernames() ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var usernames []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), constants.HistoryFileSuffix) {
			continue
		}
		usernames = append(usernames, strings.TrimSuffix(f.Name(), constants.HistoryFileSuffix))
	}
	sort.Strings(usernames)
	return usernames, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.dir
}
