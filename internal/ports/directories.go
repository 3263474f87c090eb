package ports

import (
	"context"

	"etruck-route-service/internal/domain"
)

// Port: a boundary for retrieving truck profiles from a data source.
type TruckDirectory interface {
	// Retrieve all known truck models keyed by model name.
	ListTrucks(ctx context.Context) (map[string]domain.TruckProfile, error)
}

// Port: a boundary for retrieving charging stations from a data source.
type StationDirectory interface {
	// Retrieve all charging stations available for planning.
	ListStations(ctx context.Context) ([]domain.ChargingStation, error)
}
