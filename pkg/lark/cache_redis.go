package lark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCacheConfig configures a redis-backed cache.
type RedisCacheConfig struct {
	// Addr, Password and DB are used when Client is nil.
	Addr     string
	Password string
	DB       int
	// Client reuses an existing redis client; the cache will not close it.
	Client *redis.Client
	// Prefix namespaces every key. Defaults to "lark:".
	Prefix string
}

// RedisCache shares tokens between processes through redis.
type RedisCache struct {
	client     *redis.Client
	prefix     string
	ownsClient bool
}

const (
	defaultRedisPrefix = "lark:"
	redisScanCount     = 100
)

// NewRedisCache creates a redis cache.
func NewRedisCache(config *RedisCacheConfig) (*RedisCache, error) {
	if config == nil || (config.Client == nil && config.Addr == "") {
		return nil, ErrRedisConfigRequired
	}

	client := config.Client
	ownsClient := false

	if client == nil {
		client = redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		})
		ownsClient = true
	}

	prefix := config.Prefix
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &RedisCache{client: client, prefix: prefix, ownsClient: ownsClient}, nil
}

// Get retrieves an entry.
func (c *RedisCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrCacheMiss, key)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s from redis: %w", key, err)
	}

	var entry CacheEntry

	err = json.Unmarshal(data, &entry)
	if err != nil {
		return nil, fmt.Errorf("decoding cache entry %s: %w", key, err)
	}

	if entry.Expired() {
		return nil, fmt.Errorf("%w: %s: entry expired", ErrCacheMiss, key)
	}

	return &entry, nil
}

// Set stores an entry; redis expires it at ExpiresAt.
func (c *RedisCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	var ttl time.Duration

	if !entry.ExpiresAt.IsZero() {
		ttl = time.Until(entry.ExpiresAt)
		if ttl <= 0 {
			return c.Delete(ctx, key)
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}

	err = c.client.Set(ctx, c.prefix+key, data, ttl).Err()
	if err != nil {
		return fmt.Errorf("writing %s to redis: %w", key, err)
	}

	return nil
}

// Delete removes an entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	err := c.client.Del(ctx, c.prefix+key).Err()
	if err != nil {
		return fmt.Errorf("deleting %s from redis: %w", key, err)
	}

	return nil
}

// Clear removes every key under the prefix.
func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", redisScanCount).Iterator()

	for iter.Next(ctx) {
		err := c.client.Del(ctx, iter.Val()).Err()
		if err != nil {
			return fmt.Errorf("deleting %s from redis: %w", iter.Val(), err)
		}
	}

	err := iter.Err()
	if err != nil {
		return fmt.Errorf("scanning redis keys: %w", err)
	}

	return nil
}

// Has reports whether a live entry exists for key.
func (c *RedisCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close closes the client when the cache created it.
func (c *RedisCache) Close() error {
	if !c.ownsClient {
		return nil
	}

	err := c.client.Close()
	if err != nil {
		return fmt.Errorf("closing redis client: %w", err)
	}

	return nil
}
