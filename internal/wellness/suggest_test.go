package wellness

import (
	"fmt"
	"strings"
	"testing"
)

func TestSuggestMoodBands(t *testing.T) {
	tests := []struct {
		name string
		mood int
		want string
	}{
		{"low band at 1", 1, lowMoodSuggestions[0]},
		{"low band at 3", 3, lowMoodSuggestions[0]},
		{"mid band at 4", 4, midMoodSuggestions[0]},
		{"mid band at 6", 6, midMoodSuggestions[0]},
		{"high band at 7", 7, highMoodSuggestions[0]},
		{"high band at 10", 10, highMoodSuggestions[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.mood, 1, 1, 10, "", nil)
			if len(got) != 3 {
				t.Fatalf("got %d suggestions, want exactly one triplet: %v", len(got), got)
			}
			if got[0] != "1. "+tt.want {
				t.Errorf("first suggestion = %q, want %q", got[0], "1. "+tt.want)
			}
		})
	}
}

func TestSuggestStressAnxietyClause(t *testing.T) {
	tests := []struct {
		name            string
		stress, anxiety int
		want            string
	}{
		{"breathing on high stress", 7, 1, breathingSuggestion},
		{"breathing on high anxiety", 1, 7, breathingSuggestion},
		{"short break on moderate stress", 5, 1, shortBreakSuggestion},
		{"short break on moderate anxiety", 1, 6, shortBreakSuggestion},
		{"breathing wins over short break", 8, 5, breathingSuggestion},
		{"nothing below thresholds", 4, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(5, tt.stress, tt.anxiety, 10, "", nil)
			if tt.want == "" {
				if len(got) != 3 {
					t.Errorf("got %d suggestions, want only the mood triplet: %v", len(got), got)
				}
				return
			}
			if len(got) != 4 {
				t.Fatalf("got %d suggestions, want 4: %v", len(got), got)
			}
			if got[3] != "4. "+tt.want {
				t.Errorf("fourth suggestion = %q, want %q", got[3], "4. "+tt.want)
			}
		})
	}
}

func TestSuggestSleepClause(t *testing.T) {
	got := Suggest(5, 1, 1, 4, "", nil)
	if len(got) != 4 {
		t.Fatalf("got %d suggestions, want 4: %v", len(got), got)
	}
	if got[3] != "4. "+sleepSuggestion {
		t.Errorf("fourth suggestion = %q, want sleep item", got[3])
	}

	got = Suggest(5, 1, 1, 5, "", nil)
	for _, s := range got {
		if strings.Contains(s, sleepSuggestion) {
			t.Errorf("sleep item appended at sleep=5: %v", got)
		}
	}
}

func TestSuggestSentimentClause(t *testing.T) {
	tests := []struct {
		name     string
		notes    string
		polarity float64
		want     string
	}{
		{"negative notes", "bad day", -0.5, counselorSuggestion},
		{"positive notes", "great day", 0.5, mindsetSuggestion},
		{"neutral notes", "a day", 0.0, ""},
		{"at negative threshold", "meh", -0.3, ""},
		{"at positive threshold", "fine", 0.3, ""},
		{"whitespace-only notes skip the analyzer", "   ", -0.9, ""},
		{"empty notes skip the analyzer", "", 0.9, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(5, 1, 1, 10, tt.notes, stubAnalyzer{polarity: tt.polarity})
			if tt.want == "" {
				if len(got) != 3 {
					t.Errorf("got %d suggestions, want only the mood triplet: %v", len(got), got)
				}
				return
			}
			if len(got) != 4 {
				t.Fatalf("got %d suggestions, want 4: %v", len(got), got)
			}
			if got[3] != "4. "+tt.want {
				t.Errorf("fourth suggestion = %q, want %q", got[3], "4. "+tt.want)
			}
		})
	}
}

func TestSuggestNilAnalyzer(t *testing.T) {
	got := Suggest(5, 1, 1, 10, "some notes", nil)
	if len(got) != 3 {
		t.Errorf("got %d suggestions, want 3 with nil analyzer: %v", len(got), got)
	}
}

func TestSuggestCountBoundsAndNumbering(t *testing.T) {
	tests := []struct {
		name                        string
		mood, stress, anxiety, sleep int
		notes                       string
		polarity                    float64
		wantCount                   int
	}{
		{"minimum with empty notes", 5, 1, 1, 10, "", 0, 3},
		{"every clause fires", 1, 8, 8, 2, "awful", -0.9, 6},
		{"anxious example reading", 2, 8, 8, 3, "", 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(tt.mood, tt.stress, tt.anxiety, tt.sleep, tt.notes, stubAnalyzer{polarity: tt.polarity})
			if len(got) != tt.wantCount {
				t.Fatalf("got %d suggestions, want %d: %v", len(got), tt.wantCount, got)
			}
			for i, s := range got {
				prefix := fmt.Sprintf("%d. ", i+1)
				if !strings.HasPrefix(s, prefix) {
					t.Errorf("suggestion %d = %q, want prefix %q", i, s, prefix)
				}
			}
		})
	}
}
