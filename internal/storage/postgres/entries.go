package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/mentalift/mentalift/internal/models"
	"github.com/mentalift/mentalift/internal/storage"
)

func (s *Store) AppendEntry(username string, entry models.Entry) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := storage.CheckUsername(username); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("refusing to append malformed entry: %w", err)
	}

	suggestions, err := json.Marshal(entry.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to serialize suggestions: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO entries (id, username, date, mood, stress, anxiety, sleep, notes, status, score, suggestions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, username, entry.Date,
		entry.Mood, entry.Stress, entry.Anxiety, entry.Sleep,
		entry.Notes, string(entry.Status), entry.Score, string(suggestions),
	)
	if err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}
	return nil
}

// GetHistory returns the user's entries in insertion order (seq order).
func (s *Store) GetHistory(username string) ([]models.Entry, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if err := storage.CheckUsername(username); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT id, date, mood, stress, anxiety, sleep, notes, status, score, suggestions
		FROM entries WHERE username = $1 ORDER BY seq`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	history := []models.Entry{}
	for rows.Next() {
		var entry models.Entry
		var status, suggestions string
		if err := rows.Scan(
			&entry.ID, &entry.Date,
			&entry.Mood, &entry.Stress, &entry.Anxiety, &entry.Sleep,
			&entry.Notes, &status, &entry.Score, &suggestions,
		); err != nil {
			return nil, fmt.Errorf("%w: history for %s: %v", storage.ErrCorruptStorage, username, err)
		}
		entry.Status = models.Status(status)
		if err := json.Unmarshal([]byte(suggestions), &entry.Suggestions); err != nil {
			return nil, fmt.Errorf("%w: suggestions for %s are not valid JSON: %v", storage.ErrCorruptStorage, username, err)
		}
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%w: history for %s: %v", storage.ErrCorruptStorage, username, err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return history, nil
}

func (s *Store) ListUsernames() ([]string, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT DISTINCT username FROM entries ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	usernames := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		usernames = append(usernames, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read usernames: %w", err)
	}
	return usernames, nil
}
