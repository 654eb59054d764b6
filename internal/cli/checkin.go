package cli

import (
	"fmt"

	"github.com/mentalift/mentalift/internal/models"
	"github.com/mentalift/mentalift/internal/validation"
	"github.com/mentalift/mentalift/internal/wellness"
)

// CheckinCmd records one mental-health check-in without entering the TUI.
type CheckinCmd struct {
	Mood    int    `short:"m" help:"Mood rating (1-10)." required:""`
	Stress  int    `short:"s" help:"Stress rating (1-10)." required:""`
	Anxiety int    `short:"a" help:"Anxiety rating (1-10)." required:""`
	Sleep   int    `short:"z" help:"Sleep quality rating (1-10)." required:""`
	Notes   string `short:"n" help:"Additional free-text notes."`
	User    string `short:"u" help:"Username to record for (defaults to the active session)."`
}

func (c *CheckinCmd) Validate() error {
	return validation.Reading(c.reading())
}

func (c *CheckinCmd) reading() models.Reading {
	return models.Reading{
		Mood:    c.Mood,
		Stress:  c.Stress,
		Anxiety: c.Anxiety,
		Sleep:   c.Sleep,
		Notes:   c.Notes,
	}
}

func (c *CheckinCmd) Run(ctx *Context) error {
	username, err := ctx.CurrentUser(c.User)
	if err != nil {
		return err
	}
	if err := validation.Username(username); err != nil {
		return err
	}

	entry := wellness.Evaluate(c.reading(), ctx.Analyzer)
	if err := ctx.Store.AppendEntry(username, entry); err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}

	fmt.Printf("Status: %s (score %d)\n\nSuggestions:\n", entry.Status, entry.Score)
	for _, s := range entry.Suggestions {
		fmt.Println(s)
	}
	return nil
}
