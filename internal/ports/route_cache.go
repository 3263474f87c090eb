package ports

import (
	"context"

	"etruck-route-service/internal/domain"
)

// Optional cache sitting in front of a RouteProvider. A miss is reported
// via the bool, not an error; errors mean the cache itself failed.
type RouteCache interface {
	Get(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, bool, error)
	Put(ctx context.Context, origin, destination domain.Coordinates, res RouteResult) error
}
