// Package validation guards the edges of the application: ratings entered
// on the check-in form and usernames, which double as data file names.
package validation

import (
	"fmt"
	"strings"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/models"
)

// Rating checks that a single named rating is within [RatingMin,RatingMax].
func Rating(name string, value int) error {
	if value < constants.RatingMin || value > constants.RatingMax {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, constants.RatingMin, constants.RatingMax, value)
	}
	return nil
}

// Reading validates all four ratings of a reading. Notes are free text and
// never rejected.
func Reading(r models.Reading) error {
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"mood", r.Mood},
		{"stress", r.Stress},
		{"anxiety", r.Anxiety},
		{"sleep", r.Sleep},
	} {
		if err := Rating(rating.name, rating.value); err != nil {
			return err
		}
	}
	return nil
}

// Username validates a login name. Usernames become file names
// ("<username>_data.json"), so the charset is restricted to characters that
// are safe on every supported filesystem.
func Username(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if len(username) > constants.MaxUsernameLen {
		return fmt.Errorf("username cannot be longer than %d characters", constants.MaxUsernameLen)
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return fmt.Errorf("username may only contain letters, digits, '-', '_' and '.', got %q", r)
		}
	}
	if username == "." || username == ".." {
		return fmt.Errorf("username %q is reserved", username)
	}
	return nil
}
