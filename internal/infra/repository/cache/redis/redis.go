package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

const opTimeout = 5 * time.Second

type RedisCache struct {
	redisClient *redis.Client
	defaultTTL  time.Duration
}

func NewCache(
	redisClient *redis.Client,
	defaultTTL time.Duration,
) *RedisCache {
	return &RedisCache{
		redisClient: redisClient,
		defaultTTL:  defaultTTL,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	value, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCacheMiss
		}

		return "", fmt.Errorf("%w: %s", domain.ErrCacheUnavailable, err.Error())
	}

	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ttl == 0 {
		ttl = c.defaultTTL
	}

	err := c.redisClient.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrCacheUnavailable, err.Error())
	}

	return nil
}

// Unavailable stands in for the cache once the connection retry ceiling is hit.
type Unavailable struct{}

func (Unavailable) Get(context.Context, string) (string, error) {
	return "", domain.ErrCacheUnavailable
}

func (Unavailable) Set(context.Context, string, []byte, time.Duration) error {
	return domain.ErrCacheUnavailable
}
