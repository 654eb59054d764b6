// Package storage defines the history store contract and its default
// JSON-file implementation.
package storage

import (
	"errors"
	"fmt"

	"github.com/mentalift/mentalift/internal/models"
)

// ErrCorruptStorage marks persisted data that exists but does not conform
// to the expected format. Missing data is never corruption; stores report it
// as an empty history instead.
var ErrCorruptStorage = errors.New("storage is corrupt")

// Provider is the per-user, append-only history store. Entries are
// immutable once appended and histories are ordered by insertion.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// History
	AppendEntry(username string, entry models.Entry) error
	GetHistory(username string) ([]models.Entry, error)
	ListUsernames() ([]string, error)

	// Utils
	GetConfigPath() string
}

// CheckUsername guards store operations against an empty username key.
// Full username validation happens at the login edge; the stores only
// refuse the one value that would produce nonsense file names or rows.
func CheckUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return nil
}
