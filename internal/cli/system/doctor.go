package system

import (
	"fmt"

	"github.com/mentalift/mentalift/internal/backup"
	"github.com/mentalift/mentalift/internal/cli"
	"github.com/mentalift/mentalift/internal/keyring"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: history readable for every tracked user
	if storeReachable {
		if err := checkHistories(ctx); err != nil {
			fmt.Printf("❌ Histories readable: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Histories readable: OK\n")
		}
	} else {
		fmt.Printf("⊘ Histories readable: SKIPPED (storage not reachable)\n")
	}

	// Check 3: session state
	if username := ctx.Sessions.Load(); username != "" {
		fmt.Printf("✓ Session: logged in as %s\n", username)
	} else {
		fmt.Printf("✓ Session: logged out\n")
	}

	// Check 4: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 5: OS keyring availability (warning only; only needed for
	// PostgreSQL connection strings)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: available\n")
	} else {
		fmt.Printf("⚠ OS keyring: unavailable (only needed for PostgreSQL storage)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkHistories(ctx *cli.Context) error {
	usernames, err := ctx.Store.ListUsernames()
	if err != nil {
		return err
	}
	for _, username := range usernames {
		if _, err := ctx.Store.GetHistory(username); err != nil {
			return fmt.Errorf("history for %s: %w", username, err)
		}
	}
	fmt.Printf("   %d user(s) tracked\n", len(usernames))
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run 'mentalift backup create'")
	}
	return nil
}
