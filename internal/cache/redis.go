package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/soulconnect/matching/internal/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

func (c *RedisCache) Decr(ctx context.Context, key string) (int64, error) {
	return c.Client.Decr(ctx, key).Result()
}

// KeyForAdmirerCount generates the Redis key for a profile's admirer count
func (c *RedisCache) KeyForAdmirerCount(profileID uint64) string {
	return fmt.Sprintf("admirers:count:%d", profileID)
}

// BumpAdmirerCount increments the cached admirer count, but only when one
// is already cached. Incrementing an absent key would seed the counter at
// 1 regardless of the real count; leaving it absent lets the next read
// repopulate from the DB.
func (c *RedisCache) BumpAdmirerCount(ctx context.Context, profileID uint64) error {
	key := c.KeyForAdmirerCount(profileID)
	n, err := c.Client.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, time.Hour).Err()
}

func (c *RedisCache) UpdateAdmirerCount(ctx context.Context, profileID uint64, count int64) error {
	// Always refresh TTL when updating
	return c.Client.Set(ctx, c.KeyForAdmirerCount(profileID), count, time.Hour).Err()
}

// GetAdmirerCount reads the cached admirer count. The second return value
// is false on a cache miss, so a cached zero stays distinguishable.
func (c *RedisCache) GetAdmirerCount(ctx context.Context, profileID uint64) (int64, bool, error) {
	key := c.KeyForAdmirerCount(profileID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, time.Hour).Err()
	return n, true, nil
}
