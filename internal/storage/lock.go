package storage

import (
	"fmt"

	"github.com/gofrs/flock"
)

// Locked serializes writes to a Substrate across processes with an advisory
// file lock. Reads take a shared lock.
type Locked struct {
	inner Substrate
	lock  *flock.Flock
}

func NewLocked(inner Substrate, lockPath string) *Locked {
	return &Locked{inner: inner, lock: flock.New(lockPath)}
}

func (l *Locked) Get(key string) (string, error) {
	if err := l.lock.RLock(); err != nil {
		return "", fmt.Errorf("lock %s: %w", l.lock.Path(), err)
	}
	defer func() { _ = l.lock.Unlock() }()
	return l.inner.Get(key)
}

func (l *Locked) Set(key, value string) error {
	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", l.lock.Path(), err)
	}
	defer func() { _ = l.lock.Unlock() }()
	return l.inner.Set(key, value)
}

func (l *Locked) Remove(key string) error {
	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", l.lock.Path(), err)
	}
	defer func() { _ = l.lock.Unlock() }()
	return l.inner.Remove(key)
}

// Close releases the lock file handle.
func (l *Locked) Close() error {
	return l.lock.Close()
}
