// Package keyring stores the PostgreSQL connection string in the OS
// credential store so it never has to appear on the command line or in
// a config file.
package keyring

import (
	"errors"
	"fmt"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound indicates no connection string has been stored yet.
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable indicates the OS credential store could not be reached.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetConnectionString reads the stored database connection string.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString saves connStr, replacing any previously stored value.
func SetConnectionString(connStr string) error {
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the stored connection string.
// Returns ErrNotFound when nothing was stored.
func DeleteConnectionString() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable probes the credential store with a throwaway read.
// A missing-entry result still means the store itself is reachable.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
