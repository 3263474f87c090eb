package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"etruck-route-service/internal/domain"
)

// SQLite-backed implementation of the StationDirectory port.
type SqliteStationRepository struct{ DB *sql.DB }

func NewSqliteStationRepository(db *sql.DB) *SqliteStationRepository {
	return &SqliteStationRepository{DB: db}
}

// Return all charging stations stored in the database.
func (s *SqliteStationRepository) ListStations(ctx context.Context) ([]domain.ChargingStation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite station repository: DB is nil")
	}

	query := `
	SELECT
		station_id,
		country,
		lat,
		lon,
		truck_suitable,
		operator_name,
		max_power_kw,
		price_per_kwh
	FROM charging_stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stations: query charging_stations table: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.ChargingStation, 0, 256)
	for rows.Next() {
		var st domain.ChargingStation
		err := rows.Scan(
			&st.StationID,
			&st.Country,
			&st.Location.Lat,
			&st.Location.Lon,
			&st.TruckSuitable,
			&st.OperatorName,
			&st.MaxPowerKW,
			&st.PricePerKWh,
		)
		if err != nil {
			return nil, fmt.Errorf("list stations: scan row: %w", err)
		}
		stations = append(stations, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stations: row iteration: %w", err)
	}

	return stations, nil
}
