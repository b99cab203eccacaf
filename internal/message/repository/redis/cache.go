package redis

import (
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/message/repository"
	pkgRedis "insight-srv/pkg/redis"
)

const keyPrefix = "insight:analysis"

func analysisKey(ownerID, name string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, ownerID, name)
}

func (r *implCacheRepository) GetAnalysis(ctx context.Context, ownerID, name string) ([]byte, error) {
	data, err := r.redis.Get(ctx, analysisKey(ownerID, name))
	if errors.Is(err, pkgRedis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "message.repository.redis.GetAnalysis: Failed to read cache: %v", err)
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveAnalysis(ctx context.Context, ownerID, name string, data []byte) error {
	if err := r.redis.Set(ctx, analysisKey(ownerID, name), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "message.repository.redis.SaveAnalysis: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

// InvalidateOwner drops every cached analysis of ownerID.
func (r *implCacheRepository) InvalidateOwner(ctx context.Context, ownerID string) error {
	n, err := r.redis.DeleteByPattern(ctx, analysisKey(ownerID, "*"))
	if err != nil {
		r.l.Errorf(ctx, "message.repository.redis.InvalidateOwner: Failed to invalidate cache: %v", err)
		return err
	}
	r.l.Debugf(ctx, "message.repository.redis.InvalidateOwner: Removed %d keys for owner %s", n, ownerID)
	return nil
}
