package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"etruck-route-service/internal/domain"
)

// SQLite-backed implementation of the TruckDirectory port.
type SqliteTruckRepository struct{ DB *sql.DB }

func NewSqliteTruckRepository(db *sql.DB) *SqliteTruckRepository {
	return &SqliteTruckRepository{DB: db}
}

// Return all truck profiles stored in the database, keyed by model.
func (s *SqliteTruckRepository) ListTrucks(ctx context.Context) (map[string]domain.TruckProfile, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite truck repository: DB is nil")
	}

	query := `
	SELECT
		model,
		manufacturer,
		battery_capacity_kwh,
		consumption_kwh_per_km,
		range_km
	FROM trucks
	ORDER BY model;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trucks: query trucks table: %w", err)
	}
	defer rows.Close()

	trucks := make(map[string]domain.TruckProfile, 16)
	for rows.Next() {
		var t domain.TruckProfile
		err := rows.Scan(&t.Model, &t.Manufacturer, &t.BatteryCapacity, &t.Consumption, &t.RangeKm)
		if err != nil {
			return nil, fmt.Errorf("list trucks: scan row: %w", err)
		}
		trucks[t.Model] = t
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trucks: row iteration: %w", err)
	}

	return trucks, nil
}
