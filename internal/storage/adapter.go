package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// ErrStorageFailure matches every *Failure through errors.Is.
var ErrStorageFailure = errors.New("storage failure")

// Failure reports a substrate or encoding error for one key. The caller's
// in-memory state stays authoritative.
type Failure struct {
	Op  string
	Key string
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("storage %s %q: %v", f.Op, f.Key, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

func (f *Failure) Is(target error) bool { return target == ErrStorageFailure }

// Adapter serializes values to JSON text on top of a Substrate.
type Adapter struct {
	substrate Substrate
	logger    *slog.Logger
}

func NewAdapter(substrate Substrate, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{substrate: substrate, logger: logger}
}

// Save encodes value and stores it under key.
func (a *Adapter) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.Error("encode failed", "op", "save", "key", key, "err", err)
		return &Failure{Op: "encode", Key: key, Err: err}
	}
	if err := a.substrate.Set(key, string(data)); err != nil {
		a.logger.Warn("save failed", "op", "save", "key", key, "err", err)
		return &Failure{Op: "save", Key: key, Err: err}
	}
	a.logger.Debug("saved", "key", key, "bytes", len(data))
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (a *Adapter) Remove(key string) error {
	if err := a.substrate.Remove(key); err != nil {
		a.logger.Warn("remove failed", "op", "remove", "key", key, "err", err)
		return &Failure{Op: "remove", Key: key, Err: err}
	}
	return nil
}

// Load decodes the value stored under key. ok is false when the key was never
// set or holds text that does not decode into T; the latter is logged and
// otherwise treated as no data.
func Load[T any](a *Adapter, key string) (value T, ok bool, err error) {
	raw, err := a.substrate.Get(key)
	if errors.Is(err, ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		a.logger.Warn("load failed", "op", "load", "key", key, "err", err)
		return value, false, &Failure{Op: "load", Key: key, Err: err}
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		a.logger.Warn("discarding malformed entry", "op", "load", "key", key, "err", err)
		return value, false, nil
	}
	return decoded, true, nil
}
