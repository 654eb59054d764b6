package wellness

import (
	"fmt"
	"strings"
)

// Analyzer scores the polarity of free text in [-1,1], negative values
// meaning negative sentiment.
type Analyzer interface {
	Analyze(text string) float64
}

// Polarity thresholds for the notes-based suggestions.
const (
	negativePolarityThreshold = -0.3
	positivePolarityThreshold = 0.3
)

var (
	lowMoodSuggestions = []string{
		"Talk to a friend or family member.",
		"Go for a walk outdoors.",
		"Write your thoughts in a journal.",
	}
	midMoodSuggestions = []string{
		"Do something creative you enjoy.",
		"Listen to uplifting music.",
		"Spend time on a hobby.",
	}
	highMoodSuggestions = []string{
		"Maintain your positive habits.",
		"Share your positivity with someone.",
		"Keep up your exercise routine.",
	}
)

const (
	breathingSuggestion  = "Practice deep breathing for 5–10 minutes."
	shortBreakSuggestion = "Take a short break to relax."
	sleepSuggestion      = "Aim for at least 7–8 hours of sleep."
	counselorSuggestion  = "Consider talking to a counselor."
	mindsetSuggestion    = "Keep up the positive mindset!"
)

// Suggest builds the ordered, numbered suggestion list for a reading. The
// clauses are additive and evaluated in a fixed order: exactly one mood-band
// triplet, at most one stress/anxiety item, a sleep item when sleep < 5, and
// a sentiment item when the notes are non-empty. The analyzer is only
// consulted when the trimmed notes are non-empty.
func Suggest(mood, stress, anxiety, sleep int, notes string, analyzer Analyzer) []string {
	var suggestions []string

	switch {
	case mood <= 3:
		suggestions = append(suggestions, lowMoodSuggestions...)
	case mood <= 6:
		suggestions = append(suggestions, midMoodSuggestions...)
	default:
		suggestions = append(suggestions, highMoodSuggestions...)
	}

	if stress >= 7 || anxiety >= 7 {
		suggestions = append(suggestions, breathingSuggestion)
	} else if stress >= 5 || anxiety >= 5 {
		suggestions = append(suggestions, shortBreakSuggestion)
	}

	if sleep < 5 {
		suggestions = append(suggestions, sleepSuggestion)
	}

	if strings.TrimSpace(notes) != "" && analyzer != nil {
		polarity := analyzer.Analyze(notes)
		if polarity < negativePolarityThreshold {
			suggestions = append(suggestions, counselorSuggestion)
		} else if polarity > positivePolarityThreshold {
			suggestions = append(suggestions, mindsetSuggestion)
		}
	}

	numbered := make([]string, len(suggestions))
	for i, s := range suggestions {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, s)
	}
	return numbered
}
