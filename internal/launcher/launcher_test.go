package launcher

import (
	"errors"
	"os"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/mentalift/mentalift/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func withProcesses(t *testing.T, procs []ps.Process) {
	t.Helper()
	orig := processesFunc
	processesFunc = func() ([]ps.Process, error) { return procs, nil }
	t.Cleanup(func() { processesFunc = orig })
}

func TestIsRunning(t *testing.T) {
	tests := []struct {
		name  string
		procs []ps.Process
		want  bool
	}{
		{
			name:  "no processes",
			procs: nil,
			want:  false,
		},
		{
			name: "unrelated processes",
			procs: []ps.Process{
				&mockProcess{pid: 10, executable: "bash"},
				&mockProcess{pid: 11, executable: "vim"},
			},
			want: false,
		},
		{
			name: "mentalift running",
			procs: []ps.Process{
				&mockProcess{pid: 10, executable: constants.AppName},
			},
			want: true,
		},
		{
			name: "windows executable suffix",
			procs: []ps.Process{
				&mockProcess{pid: 10, executable: constants.AppName + ".exe"},
			},
			want: true,
		},
		{
			name: "launcher itself does not count",
			procs: []ps.Process{
				&mockProcess{pid: 10, executable: constants.LauncherName},
			},
			want: false,
		},
		{
			name: "own pid is skipped",
			procs: []ps.Process{
				&mockProcess{pid: os.Getpid(), executable: constants.AppName},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProcesses(t, tt.procs)
			got, err := IsRunning()
			if err != nil {
				t.Fatalf("IsRunning() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsRunning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRunningListError(t *testing.T) {
	orig := processesFunc
	processesFunc = func() ([]ps.Process, error) { return nil, errors.New("ps failed") }
	t.Cleanup(func() { processesFunc = orig })

	if _, err := IsRunning(); err == nil {
		t.Error("IsRunning() should propagate process listing errors")
	}
}

func TestLocateBinaryPrefersSibling(t *testing.T) {
	dir := t.TempDir()
	sibling := dir + "/" + constants.AppName
	if err := os.WriteFile(sibling, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write sibling binary: %v", err)
	}

	orig := executableFn
	executableFn = func() (string, error) { return dir + "/" + constants.LauncherName, nil }
	t.Cleanup(func() { executableFn = orig })

	got, err := locateBinary()
	if err != nil {
		t.Fatalf("locateBinary() failed: %v", err)
	}
	if got != sibling {
		t.Errorf("locateBinary() = %q, want %q", got, sibling)
	}
}
