package storage

import (
	"errors"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores each key as one file under basePath. Writes are staged in
// tempDir and renamed into place, so a failed write leaves the old value.
type Diskv struct {
	d *diskv.Diskv
}

func NewDiskv(basePath, tempDir string, cacheSize uint64) *Diskv {
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		TempDir:      tempDir,
		CacheSizeMax: cacheSize,
	})}
}

func (s *Diskv) Get(key string) (string, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(val), nil
}

func (s *Diskv) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *Diskv) Remove(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
