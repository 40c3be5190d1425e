// Package cache memoizes completed reads by deterministic key.
//
// Concurrent reads of one key collapse to a single backend call; reads of
// different keys proceed independently. Entries never expire, writers
// invalidate the keys they affect instead. Errors are never stored, so a
// failed load is retried by the next reader.
package cache

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Observer is notified about lookups. Used to export hit/miss metrics.
type Observer interface {
	CacheHit(key string)
	CacheMiss(key string)
}

type Store struct {
	mu       sync.RWMutex
	entries  map[string]any
	group    singleflight.Group
	observer Observer
}

type Option func(*Store)

func WithObserver(observer Observer) Option {
	return func(s *Store) {
		s.observer = observer
	}
}

func New(opts ...Option) *Store {
	store := &Store{
		entries: make(map[string]any),
	}
	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Through returns the cached value for key, loading and storing it on a miss.
// The loader runs detached from the caller's cancellation: a consumer
// abandoning its read must not cancel a load other consumers are waiting on,
// and the shared result still populates the cache.
func Through[T any](ctx context.Context, store *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if value, ok := store.lookup(key); ok {
		if store.observer != nil {
			store.observer.CacheHit(key)
		}
		return value.(T), nil
	}

	if store.observer != nil {
		store.observer.CacheMiss(key)
	}

	value, err, _ := store.group.Do(key, func() (any, error) {
		// a concurrent caller may have stored the value while this one
		// was waiting for the flight slot
		if value, ok := store.lookup(key); ok {
			return value, nil
		}

		result, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		store.store(key, result)
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return value.(T), nil
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok
}

func (s *Store) store(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
}

// Invalidate removes exact keys.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
}

// InvalidatePrefix removes every entry whose key starts with one of the
// prefixes. Writers over-invalidate with this rather than tracking exact
// dependent keys.
func (s *Store) InvalidatePrefix(prefixes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(s.entries, key)
				break
			}
		}
	}
}

// Flush drops every entry.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]any)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *Store) Contains(key string) bool {
	_, ok := s.lookup(key)
	return ok
}
