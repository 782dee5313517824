package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps text rows in memory. It backs tests, examples, and
// cache-less local setups.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]Row // locale -> key -> row
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]map[string]Row)}
}

// Seed inserts rows directly, overwriting duplicates. Intended for test
// and example setup, not part of the Store contract.
func (s *MemoryStore) Seed(rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range rows {
		byKey, ok := s.rows[row.Locale]
		if !ok {
			byKey = make(map[string]Row)
			s.rows[row.Locale] = byKey
		}
		byKey[row.Key] = row
	}
}

// FetchAll returns rows for one locale, or all locales when locale is empty.
// Rows come back sorted by locale then key.
func (s *MemoryStore) FetchAll(_ context.Context, locale string) ([]Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Row
	if locale != "" {
		for _, row := range s.rows[locale] {
			out = append(out, row)
		}
	} else {
		for _, byKey := range s.rows {
			for _, row := range byKey {
				out = append(out, row)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Locale != out[j].Locale {
			return out[i].Locale < out[j].Locale
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// Exists reports whether a row exists for the (key, locale) pair.
func (s *MemoryStore) Exists(_ context.Context, key, locale string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rows[locale][key]
	return ok, nil
}

// Insert persists a new row.
func (s *MemoryStore) Insert(_ context.Context, key, locale, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byKey, ok := s.rows[locale]
	if !ok {
		byKey = make(map[string]Row)
		s.rows[locale] = byKey
	}
	byKey[key] = Row{Key: key, Value: value, Locale: locale}
	return nil
}

// Len returns the total number of rows across all locales.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, byKey := range s.rows {
		n += len(byKey)
	}
	return n
}

// Verify MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)
