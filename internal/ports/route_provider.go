package ports

import (
	"context"

	"etruck-route-service/internal/domain"
)

// Routed distance, travel duration and geometry between two points.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
	Polyline        []domain.Coordinates
}

// Contract for retrieving a drivable truck route between two coordinates.
type RouteProvider interface {
	// Return the routed distance, duration and path between origin and destination.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
