// Package sentiment scores the polarity of free-text notes.
package sentiment

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Vader scores text with the VADER sentiment lexicon. The zero value is
// ready to use; the analyzer is stateless.
type Vader struct{}

// New returns a lexicon-backed analyzer.
func New() *Vader {
	return &Vader{}
}

// Analyze returns the compound polarity of text in [-1,1]. Empty or
// whitespace-only text scores 0.
func (v *Vader) Analyze(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	return sentitext.PolarityScore(parsed).Compound
}
