package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentalift/mentalift/internal/constants"
)

// Status is the qualitative well-being label derived from a reading.
type Status string

const (
	StatusCalm     Status = "Calm"
	StatusAnxious  Status = "Anxious"
	StatusTired    Status = "Tired"
	StatusLow      Status = "Low"
	StatusStressed Status = "Stressed"
	StatusBalanced Status = "Balanced"
)

// Statuses lists every label a reading can classify to.
var Statuses = []Status{
	StatusCalm,
	StatusAnxious,
	StatusTired,
	StatusLow,
	StatusStressed,
	StatusBalanced,
}

// IsValid reports whether s is one of the known status labels.
func (s Status) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Reading is a single self-reported snapshot as captured from the check-in
// form. It is transient; only the Entry derived from it is persisted.
type Reading struct {
	Mood    int    `json:"mood"`
	Stress  int    `json:"stress"`
	Anxiety int    `json:"anxiety"`
	Sleep   int    `json:"sleep"`
	Notes   string `json:"notes"`
}

// Entry is one persisted check-in record. Entries are immutable once
// appended; Suggestions are frozen at save time and never recomputed.
type Entry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"` // EntryDateFormat, assigned at save time
	Mood        int      `json:"mood"`
	Stress      int      `json:"stress"`
	Anxiety     int      `json:"anxiety"`
	Sleep       int      `json:"sleep"`
	Notes       string   `json:"notes"`
	Status      Status   `json:"status"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// NewEntry assembles a persistable Entry from a reading and its derived
// fields, stamping the save time at minute granularity.
func NewEntry(r Reading, status Status, score int, suggestions []string) Entry {
	return Entry{
		ID:          uuid.New().String(),
		Date:        time.Now().Format(constants.EntryDateFormat),
		Mood:        r.Mood,
		Stress:      r.Stress,
		Anxiety:     r.Anxiety,
		Sleep:       r.Sleep,
		Notes:       r.Notes,
		Status:      status,
		Score:       score,
		Suggestions: suggestions,
	}
}

// Reading returns the raw ratings and notes the entry was derived from.
func (e Entry) Reading() Reading {
	return Reading{
		Mood:    e.Mood,
		Stress:  e.Stress,
		Anxiety: e.Anxiety,
		Sleep:   e.Sleep,
		Notes:   e.Notes,
	}
}

// ParseDate parses the entry's save timestamp.
func (e Entry) ParseDate() (time.Time, error) {
	t, err := time.ParseInLocation(constants.EntryDateFormat, e.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse entry date %q: %w", e.Date, err)
	}
	return t, nil
}

// Validate checks a persisted entry for conformance. Stores call this on
// read so malformed records surface as corruption instead of propagating.
func (e Entry) Validate() error {
	if _, err := e.ParseDate(); err != nil {
		return err
	}
	for _, rating := range []struct {
		name  string
		value int
	}{
		{"mood", e.Mood},
		{"stress", e.Stress},
		{"anxiety", e.Anxiety},
		{"sleep", e.Sleep},
	} {
		if rating.value < constants.RatingMin || rating.value > constants.RatingMax {
			return fmt.Errorf("%s rating %d is outside [%d,%d]", rating.name, rating.value, constants.RatingMin, constants.RatingMax)
		}
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("unknown status label %q", e.Status)
	}
	if got := (e.Mood + e.Sleep) - (e.Stress + e.Anxiety); e.Score != got {
		return fmt.Errorf("score %d does not match ratings (expected %d)", e.Score, got)
	}
	return nil
}
