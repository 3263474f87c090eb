package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/platform/obs"
	"etruck-route-service/internal/ports"
)

// SQLRouteCache is a SQL-backed cache for origin->destination route
// results. Coordinates are keyed by their 5-decimal string form, which is
// about a metre of precision.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	row := s.DB.QueryRowContext(ctx, `
	SELECT
        distance_meters,
        duration_seconds,
        polyline
    FROM route_cache
    WHERE origin = ?
        AND destination = ?;
	`, origin.Key(), destination.Key())

	var meters, seconds int
	var polylineJSON string
	if err := row.Scan(&meters, &seconds, &polylineJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: scan row: %w", err)
	}

	var polyline []domain.Coordinates
	if err := json.Unmarshal([]byte(polylineJSON), &polyline); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode polyline: %w", err)
	}

	return ports.RouteResult{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Polyline:        polyline,
	}, true, nil
}

func (s *SQLRouteCache) Put(
	ctx context.Context,
	origin, destination domain.Coordinates,
	res ports.RouteResult,
) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	polylineJSON, err := json.Marshal(res.Polyline)
	if err != nil {
		return fmt.Errorf("insert route cache: encode polyline: %w", err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (
        origin,
        destination,
        distance_meters,
        duration_seconds,
        polyline
    )
    VALUES (?, ?, ?, ?, ?)
	`, origin.Key(), destination.Key(), res.DistanceMeters, res.DurationSeconds, string(polylineJSON))
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}
