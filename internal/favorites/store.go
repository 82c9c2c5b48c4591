// Package favorites persists an ordered, duplicate-free list of ticker
// symbols to a flat JSON file.
package favorites

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store reads the whole file on load and rewrites it completely on every
// mutation. That is adequate for a single process only; concurrent writers
// from multiple processes can race and are unsupported.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the saved symbols in insertion order. A missing or corrupt
// file yields an empty list, never an error.
func (s *Store) Load() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends symbol if absent and reports whether the list changed.
func (s *Store) Add(symbol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for _, t := range list {
		if t == symbol {
			return false, nil
		}
	}
	return true, s.save(append(list, symbol))
}

// Remove deletes symbol if present and reports whether the list changed.
func (s *Store) Remove(symbol string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	for i, t := range list {
		if t == symbol {
			return true, s.save(append(list[:i], list[i+1:]...))
		}
	}
	return false, nil
}

func (s *Store) load() []string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("[WARN] favorites file %s is corrupt, starting empty: %v", s.path, err)
		return nil
	}
	return list
}

func (s *Store) save(list []string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
