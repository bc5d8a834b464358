package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions = 0o755

	dataDirName    = "data"
	sqliteFileName = "productify.db"
	configFileName = "config.yaml"
	lockFileName   = "productify.lock"
)

// Manager centralizes where productify keeps its files on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.productify (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DataDir is the directory handed to the diskv substrate.
func (m *Manager) DataDir() string {
	return filepath.Join(m.basePath, dataDirName)
}

// TempDir is where diskv stages writes before renaming them into DataDir.
func (m *Manager) TempDir() string {
	return filepath.Join(m.basePath, ".tmp")
}

// SQLitePath is the database file used by the sqlite substrate.
func (m *Manager) SQLitePath() string {
	return filepath.Join(m.basePath, sqliteFileName)
}

// LockPath guards the data directory against concurrent writers, such as a
// CLI command run while the TUI is open.
func (m *Manager) LockPath() string {
	return filepath.Join(m.basePath, lockFileName)
}

// ConfigPath is the optional YAML config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFileName)
}

// LogPath resolves name relative to the base path unless it is already absolute.
func (m *Manager) LogPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.basePath, name)
}

// EnsureDirs creates the base, data and temp directories.
func (m *Manager) EnsureDirs() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	for _, dir := range []string{m.basePath, m.DataDir(), m.TempDir()} {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("create directories: %w", err)
		}
	}
	return nil
}
