// Package state provides the in-memory reference implementation of the simulated
// environment a stateful mock tool can touch: a flat file namespace plus an item
// inventory. It implements stateful.Store; real deployments could substitute any
// other implementation of that interface.
package state

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Store is a mutex-guarded simulated filesystem and inventory. Writes are
// last-write-wins; nothing is persisted beyond the process.
type Store struct {
	mu    sync.RWMutex
	files map[string]string
	items []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{files: make(map[string]string)}
}

// normalize collapses the path spellings agents tend to produce ("foo", "./foo",
// "/foo") onto one key.
func normalize(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// ReadFile returns the content stored at path and whether the file exists.
func (s *Store) ReadFile(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[normalize(path)]
	return content, ok
}

// WriteFile stores content at path, replacing any previous content.
func (s *Store) WriteFile(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[normalize(path)] = content
}

// Inventory returns a copy of the current inventory in insertion order.
func (s *Store) Inventory() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// AddItem appends item to the inventory.
func (s *Store) AddItem(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Files returns a snapshot of the file namespace, for tests and diagnostics.
func (s *Store) Files() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.files)
}

// Len returns the number of stored files.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
