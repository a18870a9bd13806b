// Package memory provides an in-process EntryStore for tests and previews.
package memory

import (
	"sort"
	"sync"

	"encyclopedia/internal/domain"
	"encyclopedia/internal/ports"
)

// Store implements ports.EntryStore with a map
type Store struct {
	mu      sync.Mutex
	entries map[string]string
	saves   int
}

var _ ports.EntryStore = (*Store)(nil)

// NewStore creates a store seeded with the given entries
func NewStore(seed ...domain.Entry) *Store {
	s := &Store{entries: make(map[string]string, len(seed))}
	for _, e := range seed {
		s.entries[e.Title] = e.Body
	}
	return s
}

// ListTitles returns all titles sorted byte-wise, like the filesystem store
func (s *Store) ListTitles() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	titles := make([]string, 0, len(s.entries))
	for title := range s.entries {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles, nil
}

// GetBody returns the body stored under exactly title
func (s *Store) GetBody(title string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.entries[title]
	return body, ok, nil
}

// Save stores body under title, replacing any case variant of it
func (s *Store) Save(title, body string) error {
	if err := domain.ValidateTitle(title); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for existing := range s.entries {
		if existing != title && domain.SameTitle(existing, title) {
			delete(s.entries, existing)
		}
	}
	s.entries[title] = body
	s.saves++
	return nil
}

// Saves returns how many successful saves the store has seen
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
