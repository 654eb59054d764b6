// Package launcher locates and spawns the main mentalift binary as an
// independent process.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mitchellh/go-ps"

	"github.com/mentalift/mentalift/internal/constants"
)

var (
	processesFunc = ps.Processes
	executableFn  = os.Executable
)

// IsRunning reports whether a mentalift process other than the current
// one already exists. Two concurrent instances write last-one-wins, so
// the launcher warns before starting a second.
func IsRunning() (bool, error) {
	procs, err := processesFunc()
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		name := p.Executable()
		if name == constants.AppName || name == constants.AppName+".exe" {
			return true, nil
		}
	}
	return false, nil
}

// locateBinary finds the mentalift executable, preferring one that sits
// next to the launcher over the PATH lookup.
func locateBinary() (string, error) {
	if self, err := executableFn(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), constants.AppName)
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}
	bin, err := exec.LookPath(constants.AppName)
	if err != nil {
		return "", fmt.Errorf("failed to locate %s binary: %w", constants.AppName, err)
	}
	return bin, nil
}

// Spawn starts the main application as a detached process. The launcher
// does not wait for it and shares no state with it.
func Spawn() error {
	bin, err := locateBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(bin)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", constants.AppName, err)
	}
	return cmd.Process.Release()
}
