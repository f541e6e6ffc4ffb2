package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"unvaultd/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// EntityCache stores JSON snapshots under "<prefix>:<id>". Every method is a
// no-op on a nil client, so callers never branch on cache availability.
type EntityCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewEntityCache(client *redis.Client, prefix string, ttl time.Duration) *EntityCache {
	return &EntityCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *EntityCache) Key(id string) string {
	return c.prefix + ":" + id
}

// Get decodes the cached entity into dst and reports whether it was found.
func (c *EntityCache) Get(ctx context.Context, id string, dst interface{}) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, c.Key(id)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *EntityCache) Set(ctx context.Context, id string, value interface{}) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.Key(id), err)
	}
	return c.client.Set(ctx, c.Key(id), raw, c.ttl).Err()
}

func (c *EntityCache) Invalidate(ctx context.Context, ids ...string) error {
	if c.client == nil || len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.Key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}
