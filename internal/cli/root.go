package cli

import (
	"fmt"
	"strings"

	"github.com/mentalift/mentalift/internal/backup"
	"github.com/mentalift/mentalift/internal/logger"
	"github.com/mentalift/mentalift/internal/models"
	"github.com/mentalift/mentalift/internal/session"
	"github.com/mentalift/mentalift/internal/storage"
	"github.com/mentalift/mentalift/internal/wellness"
)

// Context carries the shared collaborators every command runs against.
type Context struct {
	Store    storage.Provider
	Sessions *session.Store
	Analyzer wellness.Analyzer
	// DataDir is where session files, charts and logs live. For the JSON
	// backend it is the store directory itself.
	DataDir string
}

// CurrentUser resolves the username a command acts for: the override flag
// when given, otherwise the persisted session.
func (c *Context) CurrentUser(override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return override, nil
	}
	if username := c.Sessions.Load(); username != "" {
		return username, nil
	}
	return "", fmt.Errorf("not logged in, run 'mentalift login <username>' or pass --user")
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors so a failing backup never interrupts the user's workflow.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatEntry renders one entry the way the history screen shows it.
func FormatEntry(e models.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", e.Date)
	fmt.Fprintf(&b, "Mood: %d | Stress: %d | Anxiety: %d | Sleep: %d\n", e.Mood, e.Stress, e.Anxiety, e.Sleep)
	fmt.Fprintf(&b, "Status: %s (score %d)\n", e.Status, e.Score)
	if e.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", e.Notes)
	}
	if len(e.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	return b.String()
}
