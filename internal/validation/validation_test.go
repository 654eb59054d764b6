package validation

import (
	"strings"
	"testing"

	"github.com/mentalift/mentalift/internal/models"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 10, false},
		{"middle", 5, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"above range", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Rating("mood", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Rating(mood, %d) = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestReading(t *testing.T) {
	valid := models.Reading{Mood: 5, Stress: 5, Anxiety: 5, Sleep: 5}
	if err := Reading(valid); err != nil {
		t.Errorf("Reading(%+v) = %v, want nil", valid, err)
	}

	tests := []struct {
		name    string
		reading models.Reading
		field   string
	}{
		{"bad mood", models.Reading{Mood: 0, Stress: 5, Anxiety: 5, Sleep: 5}, "mood"},
		{"bad stress", models.Reading{Mood: 5, Stress: 11, Anxiety: 5, Sleep: 5}, "stress"},
		{"bad anxiety", models.Reading{Mood: 5, Stress: 5, Anxiety: -1, Sleep: 5}, "anxiety"},
		{"bad sleep", models.Reading{Mood: 5, Stress: 5, Anxiety: 5, Sleep: 15}, "sleep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Reading(tt.reading)
			if err == nil {
				t.Fatalf("Reading(%+v) = nil, want error", tt.reading)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Reading(%+v) = %v, want error naming %q", tt.reading, err, tt.field)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"with digits", "alice42", false},
		{"with separators", "alice.b-c_d", false},
		{"max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 65), true},
		{"with space", "alice smith", true},
		{"with slash", "alice/bob", true},
		{"path traversal", "..", true},
		{"single dot", ".", true},
		{"with unicode", "алиса", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("Username(%q) = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}
