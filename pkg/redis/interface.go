package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis defines the interface for Redis operations.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	// DeleteByPattern removes every key matching pattern and returns how many were deleted.
	DeleteByPattern(ctx context.Context, pattern string) (int, error)
	Close() error
	Ping(ctx context.Context) error
	GetClient() *goredis.Client
}

// New creates a new Redis client. Returns an implementation of IRedis.
func New(cfg RedisConfig) (IRedis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newRedisImpl(cfg)
}
