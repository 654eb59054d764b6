package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mentalift/mentalift/internal/cli"
	"github.com/mentalift/mentalift/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Snapshot the store before an interactive session touches it
	ctx.PerformAutomaticBackup()

	model := tui.NewModel(ctx.Store, ctx.Sessions, ctx.Analyzer, ctx.DataDir)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
