// Package backup snapshots the local data store into a rotating backup
// directory.
package backup

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mentalift/mentalift/internal/constants"
)

const timestampFormat = "20060102-150405"

// Info describes one backup on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a store rooted at configPath,
// which is either the JSON data directory or a SQLite database file.
// PostgreSQL stores are server-side and not covered here.
type Manager struct {
	configPath string
	backupDir  string
}

func NewManager(configPath string) *Manager {
	dir := configPath
	if !isDir(configPath) {
		dir = filepath.Dir(configPath)
	}
	return &Manager{
		configPath: configPath,
		backupDir:  filepath.Join(dir, constants.BackupDirName),
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GetBackupDir returns the backup directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the store and rotates old backups beyond the
// retention limit. It returns the path of the new backup.
func (m *Manager) CreateBackup() (string, error) {
	if m.configPath == "postgresql" {
		return "", fmt.Errorf("backups are not supported for PostgreSQL storage")
	}
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.configPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := constants.BackupFilePrefix + time.Now().Format(timestampFormat)
	backupPath := filepath.Join(m.backupDir, name)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s-%d", name, counter))
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
	}

	var err error
	if isDir(m.configPath) {
		err = m.backupDataDir(backupPath)
	} else {
		err = m.backupDatabase(backupPath)
	}
	if err != nil {
		return "", err
	}

	if err := m.rotateBackups(); err != nil {
		// Rotation failure should not undo a successful backup
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return backupPath, nil
}

// backupDataDir copies the session file and every per-user history file
// into a timestamped backup directory.
func (m *Manager) backupDataDir(destDir string) error {
	if err := os.MkdirAll(destDir, 0700); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	files, err := os.ReadDir(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read data directory: %w", err)
	}
	for _, f := range files {
		name := f.Name()
		if f.IsDir() {
			continue
		}
		if name != constants.SessionFileName && !strings.HasSuffix(name, constants.HistoryFileSuffix) {
			continue
		}
		if err := copyFile(filepath.Join(m.configPath, name), filepath.Join(destDir, name)); err != nil {
			return fmt.Errorf("failed to back up %s: %w", name, err)
		}
	}
	return nil
}

// backupDatabase snapshots a SQLite database with VACUUM INTO, falling back
// to a plain file copy when the running SQLite does not support it.
func (m *Manager) backupDatabase(destPath string) error {
	srcDB, err := sql.Open("sqlite", m.configPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.configPath, destPath)
	}
	return nil
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, constants.BackupFilePrefix)
		// Strip a collision counter suffix (-N) if present
		if idx := strings.LastIndex(timestampStr, "-"); idx > len(timestampFormat)-1 {
			timestampStr = timestampStr[:idx]
		}
		timestamp, err := time.Parse(timestampFormat, timestampStr)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		size, err := backupSize(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      size,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// backupSize returns a file's size, or the combined size of a directory
// backup's contents.
func backupSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		total += fi.Size()
	}
	return total, nil
}

// Restore copies a backup back over the live store. The current state is
// backed up first so a bad restore can itself be undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %s", backupPath)
	}

	if _, err := m.CreateBackup(); err != nil {
		return fmt.Errorf("failed to back up current state before restore: %w", err)
	}

	if isDir(backupPath) {
		files, err := os.ReadDir(backupPath)
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			src := filepath.Join(backupPath, f.Name())
			dst := filepath.Join(m.configPath, f.Name())
			if err := copyFile(src, dst); err != nil {
				return fmt.Errorf("failed to restore %s: %w", f.Name(), err)
			}
		}
		return nil
	}
	return copyFile(backupPath, m.configPath)
}

func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) <= constants.MaxBackups {
		return nil
	}
	for _, old := range backups[constants.MaxBackups:] {
		if err := os.RemoveAll(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
