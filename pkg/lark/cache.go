package lark

import (
	"context"
	"fmt"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// CacheEntry is a cached value with its expiry. A zero ExpiresAt never expires.
type CacheEntry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is past its expiry.
func (e *CacheEntry) Expired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Cache stores access tokens and app tickets. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Set(ctx context.Context, key string, entry *CacheEntry) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryCache is an in-process Cache backed by ttlcache.
type MemoryCache struct {
	cache *ttlcache.Cache[string, *CacheEntry]
}

// NewMemoryCache creates a memory cache holding at most maxSize entries. Zero or a
// negative size means unbounded.
func NewMemoryCache(maxSize int) *MemoryCache {
	opts := []ttlcache.Option[string, *CacheEntry]{
		ttlcache.WithDisableTouchOnHit[string, *CacheEntry](),
	}

	if maxSize > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, *CacheEntry](uint64(maxSize)))
	}

	return &MemoryCache{cache: ttlcache.New[string, *CacheEntry](opts...)}
}

// Get retrieves an entry.
func (c *MemoryCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	item := c.cache.Get(key)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}

	entry := item.Value()
	if entry.Expired() {
		c.cache.Delete(key)

		return nil, fmt.Errorf("%w: %s: entry expired", ErrCacheMiss, key)
	}

	return entry, nil
}

// Set stores an entry until its ExpiresAt.
func (c *MemoryCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	ttl := ttlcache.NoTTL

	if !entry.ExpiresAt.IsZero() {
		if remaining := time.Until(entry.ExpiresAt); remaining > 0 {
			ttl = remaining
		}
	}

	c.cache.Set(key, entry, ttl)

	return nil
}

// Delete removes an entry.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(ctx context.Context) error {
	c.cache.DeleteAll()

	return nil
}

// Has reports whether a live entry exists for key.
func (c *MemoryCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Cleanup drops expired entries.
func (c *MemoryCache) Cleanup() {
	c.cache.DeleteExpired()

	for key, item := range c.cache.Items() {
		if item.Value().Expired() {
			c.cache.Delete(key)
		}
	}
}

// Len returns the number of stored entries, expired ones included until cleanup.
func (c *MemoryCache) Len() int {
	return c.cache.Len()
}

// Close stops the background expiry sweep, if one was started.
func (c *MemoryCache) Close() {
	c.cache.Stop()
}
