package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

var _ Invalidator = (*CachedStore)(nil)

// CachedStore puts an expiring LRU in front of another Store.
// Reads are served from the cache when present; writes go through to the
// backing store first and only then refresh the cache.
type CachedStore struct {
	next Store
	lru  *expirable.LRU[string, string]
}

// NewCachedStore wraps next with a cache of the given size and TTL.
// Non-positive values fall back to DefaultCacheSize and DefaultCacheTTL.
func NewCachedStore(next Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next: next,
		lru:  expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if value, ok := s.lru.Get(key); ok {
		return value, true, nil
	}

	value, found, err := s.next.Get(ctx, key)
	if err != nil || !found {
		return value, found, err
	}
	s.lru.Add(key, value)
	return value, true, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		s.lru.Remove(key)
		return err
	}
	s.lru.Add(key, value)
	return nil
}

// Invalidate drops a key from the cache without touching the backing store
func (s *CachedStore) Invalidate(key string) {
	s.lru.Remove(key)
}
