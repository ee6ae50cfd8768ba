package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultListTTL is used when NewListCache is given a non-positive TTL.
	DefaultListTTL = 5 * time.Minute

	listCacheKeyPrefix = "resource"
)

// ErrMiss is returned by Get when the key does not exist or has expired.
var ErrMiss = errors.New("cache: miss")

// ListCache stores the JSON-encoded list of one collection.
// Key format: "resource:{collection}:list"
type ListCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewListCache creates a ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient, ttl time.Duration) *ListCache {
	return newListCache(r.Client(), ttl)
}

func newListCache(c redis.Cmdable, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &ListCache{client: c, ttl: ttl}
}

// Get decodes the cached list of collection into dst. Returns ErrMiss when
// nothing is cached.
func (c *ListCache) Get(ctx context.Context, collection string, dst any) error {
	data, err := c.client.Get(ctx, Key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("cache decode %s: %w", collection, err)
	}
	return nil
}

// Set stores v as the list of collection with the configured TTL.
func (c *ListCache) Set(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", collection, err)
	}
	if err := c.client.Set(ctx, Key(collection), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached lists of the given collections.
func (c *ListCache) Invalidate(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return nil
	}
	keys := make([]string, len(collections))
	for i, col := range collections {
		keys[i] = Key(col)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// TTL reports how long entries live.
func (c *ListCache) TTL() time.Duration {
	return c.ttl
}

// Key builds the Redis key: "resource:{collection}:list"
func Key(collection string) string {
	return fmt.Sprintf("%s:%s:list", listCacheKeyPrefix, collection)
}
