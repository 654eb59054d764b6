package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogDirectory(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "mentalift")

	if err := Init(Config{Debug: false, ConfigDir: dataDir}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init()")
	}

	logDir := filepath.Join(dataDir, "logs")
	if _, err := os.Stat(logDir); err != nil {
		t.Errorf("log directory not created at %s: %v", logDir, err)
	}

	Warn("check-in recorded", "user", "alice", "score", -3)
	Error("history load failed", "user", "bob")

	logFile := filepath.Join(logDir, "mentalift.log")
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "check-in recorded") {
		t.Errorf("log file does not contain the warn message: %q", string(data))
	}
}

func TestInitDebugLevel(t *testing.T) {
	dataDir := t.TempDir()

	if err := Init(Config{Debug: true, ConfigDir: dataDir}); err != nil {
		t.Fatalf("Init() in debug mode failed: %v", err)
	}

	Debug("resolving storage backend", "config", dataDir)
	Info("session resumed", "user", "alice")

	data, err := os.ReadFile(filepath.Join(dataDir, "logs", "mentalift.log"))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "resolving storage backend") {
		t.Errorf("debug message missing from log file: %q", string(data))
	}
}

func TestWarnLevelFiltersDebug(t *testing.T) {
	dataDir := t.TempDir()

	if err := Init(Config{Debug: false, ConfigDir: dataDir}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	Debug("should be filtered")
	Info("should also be filtered")

	data, err := os.ReadFile(filepath.Join(dataDir, "logs", "mentalift.log"))
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(data), "should be filtered") {
		t.Errorf("debug message leaked into warn-level log: %q", string(data))
	}
}

func TestLoggingBeforeInit(t *testing.T) {
	Logger = nil

	// Must not panic when Init was never called or failed.
	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")
}

func TestInitUnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, directory permissions are not enforced")
	}

	parent := t.TempDir()
	if err := os.Chmod(parent, 0500); err != nil {
		t.Fatalf("failed to chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(parent, 0700) })

	if err := Init(Config{ConfigDir: filepath.Join(parent, "data")}); err == nil {
		t.Error("Init() should fail when the log directory cannot be created")
	}
}
