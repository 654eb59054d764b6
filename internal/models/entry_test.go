package models

import (
	"strings"
	"testing"
	"time"

	"github.com/mentalift/mentalift/internal/constants"
)

func validEntry() Entry {
	return Entry{
		ID:          "0c40a8d6-8f4f-4a5e-9f2a-0a4c7e2d5b11",
		Date:        "2026-08-30 14:05",
		Mood:        5,
		Stress:      4,
		Anxiety:     3,
		Sleep:       6,
		Notes:       "steady day",
		Status:      StatusBalanced,
		Score:       4,
		Suggestions: []string{"1. Do something creative you enjoy."},
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("Happy").IsValid() {
		t.Error("unknown label should not be valid")
	}
	if Status("").IsValid() {
		t.Error("empty label should not be valid")
	}
}

func TestNewEntry(t *testing.T) {
	r := Reading{Mood: 3, Stress: 7, Anxiety: 2, Sleep: 8, Notes: "rough morning"}
	e := NewEntry(r, StatusStressed, 2, []string{"1. Go for a walk outdoors."})

	if e.ID == "" {
		t.Error("NewEntry should assign an ID")
	}
	if e.Reading() != r {
		t.Errorf("Reading() = %+v, want %+v", e.Reading(), r)
	}
	parsed, err := e.ParseDate()
	if err != nil {
		t.Fatalf("ParseDate() failed on a fresh entry: %v", err)
	}
	if time.Since(parsed) > 2*time.Minute {
		t.Errorf("entry date %s is not recent", e.Date)
	}
	if e.Date != parsed.Format(constants.EntryDateFormat) {
		t.Errorf("date %q does not round-trip through the entry format", e.Date)
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Entry)
		wantErr string
	}{
		{"valid entry", func(e *Entry) {}, ""},
		{"malformed date", func(e *Entry) { e.Date = "30/08/2026" }, "failed to parse entry date"},
		{"empty date", func(e *Entry) { e.Date = "" }, "failed to parse entry date"},
		{"mood below range", func(e *Entry) { e.Mood = 0; e.Score = -1 }, "mood rating 0"},
		{"stress above range", func(e *Entry) { e.Stress = 11; e.Score = -3 }, "stress rating 11"},
		{"anxiety below range", func(e *Entry) { e.Anxiety = -2; e.Score = 9 }, "anxiety rating -2"},
		{"sleep above range", func(e *Entry) { e.Sleep = 12; e.Score = 10 }, "sleep rating 12"},
		{"unknown status", func(e *Entry) { e.Status = "Euphoric" }, "unknown status label"},
		{"score mismatch", func(e *Entry) { e.Score = 7 }, "score 7 does not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
