package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/faizmokh/productify/internal/config"
	"github.com/faizmokh/productify/internal/files"
)

// ErrNotFound is returned by a Substrate when the key was never set.
var ErrNotFound = errors.New("key not found")

// Substrate is the opaque string-keyed store every dashboard store persists
// through. Implementations give no atomicity across keys.
type Substrate interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// Open builds the substrate named by backend, rooted under the manager's paths.
// The returned close function must be called when the caller is done.
func Open(backend string, manager *files.Manager, cfg config.StorageConfig) (Substrate, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case config.BackendMemory:
		return NewMemory(), noop, nil
	case config.BackendDiskv, "":
		if err := manager.EnsureDirs(); err != nil {
			return nil, nil, err
		}
		locked := NewLocked(NewDiskv(manager.DataDir(), manager.TempDir(), cfg.CacheSize), manager.LockPath())
		return locked, locked.Close, nil
	case config.BackendSQLite:
		if err := manager.EnsureDirs(); err != nil {
			return nil, nil, err
		}
		db, err := OpenSQLite(manager.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// Memory keeps values in a map. It backs --storage memory runs and tests.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
