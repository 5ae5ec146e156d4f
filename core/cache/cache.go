package cache

import (
	"context"
	"fmt"
	"time"

	"mentorhub/core/config"
	"mentorhub/core/constants"
	"mentorhub/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is the redis-backed shared state the services depend on: session
// blacklisting, login throttling and the one-shot request confirmation
// tokens.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Expire(ctx context.Context, key string, ttl time.Duration) error

	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	IncrementLoginAttempt(ctx context.Context, identifier string) (int64, error)
	IsLoginBlocked(ctx context.Context, identifier string) (bool, error)

	SetConfirmation(ctx context.Context, token, payload string) error
	// TakeConfirmation atomically fetches and deletes a confirmation
	// payload. The second caller with the same token gets ("", false, nil):
	// this is what makes a confirmation single-use.
	TakeConfirmation(ctx context.Context, token string) (string, bool, error)
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis initialized successfully", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, identifier string) (int64, error) {
	key := constants.RedisKeyLoginAttempt + identifier
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		if err := c.client.Expire(ctx, key, constants.BlockDuration).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (c *redisCache) IsLoginBlocked(ctx context.Context, identifier string) (bool, error) {
	val, err := c.client.Get(ctx, constants.RedisKeyLoginAttempt+identifier).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val >= constants.MaxLoginAttempts, nil
}

func (c *redisCache) SetConfirmation(ctx context.Context, token, payload string) error {
	return c.client.Set(ctx, constants.RedisKeyConfirmation+token, payload, constants.ConfirmationTTL).Err()
}

func (c *redisCache) TakeConfirmation(ctx context.Context, token string) (string, bool, error) {
	val, err := c.client.GetDel(ctx, constants.RedisKeyConfirmation+token).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}
