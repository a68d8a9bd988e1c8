// Package jsonfile persists record collections as pretty-printed JSON
// array files, one file per collection, rewritten in full on every
// mutation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound indicates the collection file does not exist.
	ErrNotFound = errors.New("collection file not found")

	// ErrParse indicates the collection file is not valid JSON.
	ErrParse = errors.New("collection file is not valid JSON")
)

// Store serializes access to JSON collection files under a root
// directory. All reads and writes of a given file name go through a
// per-file mutex, so two concurrent mutations of the same collection
// cannot lose updates to each other.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a store rooted at dir. The directory is created if
// missing.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Dir returns the storage root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Seed creates the named file holding an empty JSON array if it does
// not exist yet.
func (s *Store) Seed(name string) error {
	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	path := s.path(name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", name, err)
	}

	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// fileLock returns the mutex guarding the named file, creating it on
// first use.
func (s *Store) fileLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
	}
	return lock
}

// Load reads and decodes the named collection.
func Load[T any](s *Store, name string) ([]T, error) {
	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	return load[T](s, name)
}

// Save encodes and overwrites the named collection in full.
func Save[T any](s *Store, name string, records []T) error {
	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	return save(s, name, records)
}

// Update runs a read-modify-write cycle on the named collection under
// its file lock. The callback receives the decoded records and
// returns the records to persist.
func Update[T any](s *Store, name string, fn func(records []T) ([]T, error)) error {
	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	records, err := load[T](s, name)
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return save(s, name, updated)
}

func load[T any](s *Store, name string) ([]T, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, name, err)
	}

	return records, nil
}

func save[T any](s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
