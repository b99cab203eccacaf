package redis

import (
	"time"

	"insight-srv/internal/message/repository"
	"insight-srv/pkg/log"
	pkgRedis "insight-srv/pkg/redis"
)

const defaultTTL = 10 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New - Factory. A non-positive ttl falls back to 10 minutes.
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
