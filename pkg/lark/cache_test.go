package lark_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lark-client/pkg/lark"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)
	ctx := context.Background()

	entry := &lark.CacheEntry{
		Data:      []byte("t-123"),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}

	err := cache.Set(ctx, "tenant_access_token:cli_a", entry)
	require.NoError(t, err)

	retrieved, err := cache.Get(ctx, "tenant_access_token:cli_a")
	require.NoError(t, err)
	assert.Equal(t, entry.Data, retrieved.Data)
}

func TestMemoryCache_GetNonExistent(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)

	_, err := cache.Get(context.Background(), "nonexistent")
	require.ErrorIs(t, err, lark.ErrCacheMiss)
	assert.Contains(t, err.Error(), "key not found")
}

func TestMemoryCache_GetExpired(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)
	ctx := context.Background()

	err := cache.Set(ctx, "key1", &lark.CacheEntry{
		Data:      []byte("stale"),
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	})
	require.NoError(t, err)

	_, err = cache.Get(ctx, "key1")
	require.ErrorIs(t, err, lark.ErrCacheMiss)
	assert.Contains(t, err.Error(), "entry expired")
	assert.False(t, cache.Has(ctx, "key1"))
}

func TestMemoryCache_NoExpiry(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "app_ticket:cli_a", &lark.CacheEntry{Data: []byte("ticket")}))
	assert.True(t, cache.Has(ctx, "app_ticket:cli_a"))
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, &lark.CacheEntry{Data: []byte(key), ExpiresAt: time.Now().Add(time.Hour)}))
	}

	require.NoError(t, cache.Delete(ctx, "a"))
	assert.False(t, cache.Has(ctx, "a"))
	assert.True(t, cache.Has(ctx, "b"))

	require.NoError(t, cache.Clear(ctx))
	assert.False(t, cache.Has(ctx, "b"))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Capacity(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(2)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, cache.Set(ctx, key, &lark.CacheEntry{Data: []byte(key)}))
	}

	assert.Equal(t, 2, cache.Len())
	assert.True(t, cache.Has(ctx, "c"))
}

func TestMemoryCache_Cleanup(t *testing.T) {
	t.Parallel()

	cache := lark.NewMemoryCache(10)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "expired", &lark.CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, cache.Set(ctx, "live", &lark.CacheEntry{ExpiresAt: time.Now().Add(time.Hour)}))
	assert.Equal(t, 2, cache.Len())

	cache.Cleanup()

	assert.Equal(t, 1, cache.Len())
	assert.True(t, cache.Has(ctx, "live"))
}

func TestCacheEntry_Expired(t *testing.T) {
	t.Parallel()

	assert.False(t, (&lark.CacheEntry{}).Expired())
	assert.False(t, (&lark.CacheEntry{ExpiresAt: time.Now().Add(time.Minute)}).Expired())
	assert.True(t, (&lark.CacheEntry{ExpiresAt: time.Now().Add(-time.Minute)}).Expired())
}
