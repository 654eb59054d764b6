// Package errors holds the CLI's error presentation helpers. Failures
// are logged with full context and shown to the user with a uniform
// "Error: " prefix.
package errors

import (
	"fmt"
	"os"

	"github.com/mentalift/mentalift/internal/logger"
)

// Format renders err for terminal output. Nil yields the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf renders a formatted message for terminal output.
func Formatf(format string, args ...any) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, prints it to stderr, and exits with status 1.
// A nil err is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command execution failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Fatalf logs and prints a formatted message, then exits with status 1.
func Fatalf(format string, args ...any) {
	logger.Error("Command execution failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
