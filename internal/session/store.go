// Package session keeps per-browser-session state in memory.
package session

import (
	"sync"
	"time"

	"shopfront/pkg/cache"
)

// Store maps session ids to a value of type T, creating it on first use.
// Entries expire after ttl without access.
type Store[T any] struct {
	mu     sync.Mutex
	cache  cache.CacheService
	ttl    time.Duration
	prefix string
	newFn  func() T
}

func NewStore[T any](c cache.CacheService, prefix string, ttl time.Duration, newFn func() T) *Store[T] {
	return &Store[T]{cache: c, prefix: prefix, ttl: ttl, newFn: newFn}
}

// Get returns the value for id and refreshes its expiry.
func (s *Store[T]) Get(id string) T {
	key := s.key(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if val, found := s.cache.Get(key); found {
		if v, ok := val.(T); ok {
			s.cache.Set(key, v, s.ttl)
			return v
		}
	}
	v := s.newFn()
	s.cache.Set(key, v, s.ttl)
	return v
}

// Delete drops the value for id.
func (s *Store[T]) Delete(id string) {
	s.cache.Delete(s.key(id))
}

func (s *Store[T]) key(id string) string {
	return s.prefix + ":" + id
}
