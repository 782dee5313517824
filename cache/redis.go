package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed snapshot cache. Snapshots are stored as
// JSON-encoded objects under a prefixed key.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "golocale:")
}

// NewRedisCache creates a new Redis cache with the given configuration.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "golocale:"
	}

	return &RedisCache{
		client:    client,
		keyPrefix: prefix,
	}, nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = "golocale:"
	}

	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Has reports whether an entry exists under name. Redis expiry handles TTL.
func (c *RedisCache) Has(ctx context.Context, name string) (bool, error) {
	n, err := c.client.Exists(ctx, c.keyPrefix+name).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Get retrieves a snapshot from Redis.
func (c *RedisCache) Get(ctx context.Context, name string) (map[string]string, bool, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+name).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var texts map[string]string
	if err := json.Unmarshal([]byte(data), &texts); err != nil {
		// Corrupt entry reads as a miss
		return nil, false, nil
	}
	return texts, true, nil
}

// Put stores a snapshot in Redis with the given TTL.
func (c *RedisCache) Put(ctx context.Context, name string, texts map[string]string, ttl time.Duration) error {
	data, err := json.Marshal(texts)
	if err != nil {
		return err
	}

	if ttl < 0 {
		ttl = 0
	}
	return c.client.Set(ctx, c.keyPrefix+name, data, ttl).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Verify RedisCache implements SnapshotCache
var _ SnapshotCache = (*RedisCache)(nil)
