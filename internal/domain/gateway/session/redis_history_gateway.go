package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weather-widget/internal/domain/model"
	"weather-widget/pkg/redis"
)

type redisHistoryGateway struct {
	client *redis.Client
	cache  *redis.Cache
}

// NewRedisHistoryGateway stores histories under weatherSearchHistory::<sessionID> with a sliding TTL
func NewRedisHistoryGateway(client *redis.Client, ttl time.Duration) HistoryGateway {
	opts := redis.NewCacheOptions().
		WithCacheName(HistoryKey).
		WithTTL(ttl).
		WithRefreshTTL(true)

	return &redisHistoryGateway{
		client: client,
		cache:  redis.NewCache(client, opts),
	}
}

func (g *redisHistoryGateway) Load(ctx context.Context, sessionID string) ([]string, error) {
	data, err := g.cache.GetRaw(ctx, sessionID)
	if errors.Is(err, redis.ErrCacheMiss) {
		return []string{}, nil
	}
	if err != nil && data == nil {
		return []string{}, fmt.Errorf("failed to load search history: %w", err)
	}
	return decodeHistory(sessionID, data), nil
}

func (g *redisHistoryGateway) Save(ctx context.Context, sessionID string, cities []string) error {
	// the cache serializes the list as a JSON array
	if err := g.cache.Set(ctx, sessionID, normalizeHistory(cities)); err != nil {
		return fmt.Errorf("failed to save search history: %w", err)
	}
	return nil
}

func (g *redisHistoryGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := g.client.HealthCheck(ctx)
	details := check.Details
	details["backend"] = "redis"

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
