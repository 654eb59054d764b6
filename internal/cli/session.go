package cli

import (
	"fmt"
	"strings"

	"github.com/mentalift/mentalift/internal/validation"
)

// LoginCmd persists the active username. There is no password check; the
// username only selects which local history file later commands act on.
type LoginCmd struct {
	Username string `arg:"" help:"Username to log in as."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	// Usernames become file names, so surrounding whitespace is stripped
	// before anything is persisted.
	username := strings.TrimSpace(c.Username)
	if err := validation.Username(username); err != nil {
		return err
	}
	if err := ctx.Sessions.Save(username); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", username)
	return nil
}

// LogoutCmd clears the active session.
type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Sessions.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// WhoamiCmd prints the active username, if any.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	username := ctx.Sessions.Load()
	if username == "" {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Println(username)
	return nil
}
