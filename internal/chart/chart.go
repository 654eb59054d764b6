// Package chart renders the well-being trend image for a user's history.
package chart

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/models"
)

// trendColor matches the line color the desktop app used for the graph.
var trendColor = drawing.ColorFromHex("4C84FF")

// RenderTrend plots score over date and writes a PNG to path, overwriting
// any previous chart. A single check-in is drawn as a flat line across a
// one-hour window; an empty history is an error.
func RenderTrend(username string, dates []time.Time, scores []int, path string) error {
	if len(dates) != len(scores) {
		return fmt.Errorf("dates and scores must have the same length, got %d and %d", len(dates), len(scores))
	}
	if len(dates) == 0 {
		return fmt.Errorf("no entries to draw a trend")
	}

	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}

	if len(dates) == 1 {
		// The chart library cannot scale a single-point x-range
		dates = []time.Time{dates[0].Add(-30 * time.Minute), dates[0].Add(30 * time.Minute)}
		values = []float64{values[0], values[0]}
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Mental Health Trend - %s", username),
		Width:  700,
		Height: 300,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat(constants.EntryDateFormat),
		},
		YAxis: chart.YAxis{
			Name: "Mental Well-being Score",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: username,
				Style: chart.Style{
					StrokeColor: trendColor,
					DotColor:    trendColor,
					DotWidth:    3,
				},
				XValues: dates,
				YValues: values,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderHistory extracts dates and scores from a history and renders the
// trend chart. Entries whose date fails to parse are skipped; a validated
// history has none.
func RenderHistory(username string, history []models.Entry, path string) error {
	dates := make([]time.Time, 0, len(history))
	scores := make([]int, 0, len(history))
	for _, entry := range history {
		t, err := entry.ParseDate()
		if err != nil {
			continue
		}
		dates = append(dates, t)
		scores = append(scores, entry.Score)
	}
	return RenderTrend(username, dates, scores, path)
}
