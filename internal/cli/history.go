package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mentalift/mentalift/internal/chart"
	"github.com/mentalift/mentalift/internal/constants"
	"github.com/mentalift/mentalift/internal/logger"
	"github.com/mentalift/mentalift/internal/validation"
)

// HistoryCmd prints a user's past check-ins, optionally rendering the
// trend chart image.
type HistoryCmd struct {
	User  string `short:"u" help:"Username to show history for (defaults to the active session)."`
	Chart bool   `short:"c" help:"Render the well-being trend chart PNG."`
	Last  int    `short:"l" help:"Only show the last N entries (0 shows all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	username, err := ctx.CurrentUser(c.User)
	if err != nil {
		return err
	}
	if err := validation.Username(username); err != nil {
		return err
	}

	history, err := ctx.Store.GetHistory(username)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No history yet.")
		return nil
	}

	shown := history
	if c.Last > 0 && c.Last < len(shown) {
		shown = shown[len(shown)-c.Last:]
	}

	fmt.Printf("Mental Well-being History - %s (%d entries)\n\n", username, len(history))
	for _, entry := range shown {
		fmt.Println(FormatEntry(entry))
		fmt.Println("----------------------------------------")
	}

	if c.Chart {
		chartPath := filepath.Join(ctx.DataDir, username+constants.ChartFileSuffix)
		if err := chart.RenderHistory(username, history, chartPath); err != nil {
			// A failed chart render never blocks the listing
			logger.Warn("Failed to render trend chart", "user", username, "error", err)
			fmt.Printf("Warning: could not render trend chart: %v\n", err)
		} else {
			fmt.Printf("Trend chart written to %s\n", chartPath)
		}
	}
	return nil
}
