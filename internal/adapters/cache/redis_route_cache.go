package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/platform/obs"
	"etruck-route-service/internal/ports"
)

// RedisRouteCache keeps route results in Redis with a TTL, so several
// planner instances can share one cache and stale road data eventually
// ages out.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedRoute struct {
	DistanceMeters  int                  `json:"distance_meters"`
	DurationSeconds int                  `json:"duration_seconds"`
	Polyline        []domain.Coordinates `json:"polyline"`
}

func routeKey(origin, destination domain.Coordinates) string {
	return fmt.Sprintf("route:%s:%s", origin.Key(), destination.Key())
}

func (r *RedisRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.redis.Get")(&err)

	raw, err := r.client.Get(ctx, routeKey(origin, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: redis get: %w", err)
	}

	var c cachedRoute
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode: %w", err)
	}

	return ports.RouteResult{
		DistanceMeters:  c.DistanceMeters,
		DurationSeconds: c.DurationSeconds,
		Polyline:        c.Polyline,
	}, true, nil
}

func (r *RedisRouteCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinates,
	res ports.RouteResult,
) (err error) {
	defer obs.Time(ctx, "route.cache.redis.Put")(&err)

	raw, err := json.Marshal(cachedRoute{
		DistanceMeters:  res.DistanceMeters,
		DurationSeconds: res.DurationSeconds,
		Polyline:        res.Polyline,
	})
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	if err := r.client.Set(ctx, routeKey(origin, destination), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache: redis set: %w", err)
	}
	return nil
}
