// Package wellness holds the pure rule engines that turn a reading into a
// status label, a numeric score and a list of suggestions.
package wellness

import (
	"github.com/mentalift/mentalift/internal/models"
)

// Score computes the well-being score for a reading. With ratings in
// [1,10] the result is always within [-18,18].
func Score(mood, stress, anxiety, sleep int) int {
	return (mood + sleep) - (stress + anxiety)
}

// Classify maps the four ratings to a status label. The rules form a
// fixed-priority decision table; the first matching rule wins. Out-of-range
// values are not rejected here, they simply classify at the table's edges.
func Classify(mood, stress, anxiety, sleep int) models.Status {
	switch {
	case mood >= 7 && stress <= 3 && anxiety <= 3 && sleep >= 7:
		return models.StatusCalm
	case stress >= 7 && anxiety >= 7:
		return models.StatusAnxious
	case mood <= 3 && sleep <= 4:
		return models.StatusTired
	case mood <= 4:
		return models.StatusLow
	case stress >= 6:
		return models.StatusStressed
	default:
		return models.StatusBalanced
	}
}

// Evaluate runs both engines over a reading and assembles the resulting
// entry. The status and suggestions are computed independently from the
// same reading; suggestions are frozen into the entry at this point.
func Evaluate(r models.Reading, analyzer Analyzer) models.Entry {
	status := Classify(r.Mood, r.Stress, r.Anxiety, r.Sleep)
	score := Score(r.Mood, r.Stress, r.Anxiety, r.Sleep)
	suggestions := Suggest(r.Mood, r.Stress, r.Anxiety, r.Sleep, r.Notes, analyzer)
	return models.NewEntry(r, status, score, suggestions)
}
