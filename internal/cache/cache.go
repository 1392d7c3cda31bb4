// Package cache holds fetched records between screen visits so navigating
// back to a list or detail does not refetch what the console already has.
// Entries are invalidated by entity prefix after any mutation.
package cache

import (
	"strings"
	"sync"
)

// Entity prefixes for cache keys.
const (
	EntityKid   = "kid"
	EntityParty = "party"
)

// Store is an in-memory response cache keyed by entity and record ID.
// It is safe for concurrent use from command goroutines.
type Store struct {
	mu      sync.Mutex
	entries map[string]any
}

// NewStore creates an empty cache.
func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

// Key builds a cache key for a single record.
func Key(entity, id string) string {
	return entity + "/" + id
}

// ListKey builds a cache key for an entity's full collection.
func ListKey(entity string) string {
	return entity + "/*"
}

// Get returns the cached value for key, if present.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	return v, ok
}

// Put stores a value under key, replacing any previous entry.
func (s *Store) Put(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = v
}

// Invalidate drops every entry belonging to the given entity, both the
// collection and any single records. Called after create, update or delete
// so the next visit refetches.
func (s *Store) Invalidate(entity string) {
	prefix := entity + "/"
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
}
