// Package system holds the housekeeping commands: init, doctor, migrate,
// keyring management and the TUI entry point.
package system

import (
	"fmt"
	"os"

	"github.com/mentalift/mentalift/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing store before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if info, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if info.IsDir() {
				if err := os.RemoveAll(path); err != nil {
					return fmt.Errorf("failed to remove existing data directory: %w", err)
				}
			} else if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove existing database: %w", err)
			}
			fmt.Printf("Removed existing store: %s\n", path)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	fmt.Printf("✓ Storage initialized at %s\n", ctx.Store.GetConfigPath())
	return nil
}
