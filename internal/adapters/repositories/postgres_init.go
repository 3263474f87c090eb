package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-dialect twin of InitSchema, used by dbtool against a shared
// instance. Only the truck and station directories live there; the route
// cache stays local in SQLite or Redis.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTrucksQuery := `
	CREATE TABLE IF NOT EXISTS trucks (
		model TEXT PRIMARY KEY,
		manufacturer TEXT NOT NULL,
		battery_capacity_kwh DOUBLE PRECISION NOT NULL,
		consumption_kwh_per_km DOUBLE PRECISION NOT NULL,
		range_km DOUBLE PRECISION NOT NULL
	);
	`

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS charging_stations (
        station_id INTEGER PRIMARY KEY,
        country TEXT NOT NULL,
        lat DOUBLE PRECISION NOT NULL,
        lon DOUBLE PRECISION NOT NULL,
        truck_suitable BOOLEAN NOT NULL,
        operator_name TEXT NOT NULL,
        max_power_kw DOUBLE PRECISION NOT NULL,
        price_per_kwh DOUBLE PRECISION NOT NULL
    );
	`

	createStationCountryIndex := `
	CREATE INDEX IF NOT EXISTS idx_charging_stations_country
    ON charging_stations(country);
	`

	statements := []string{
		createTrucksQuery,
		createStationsQuery,
		createStationCountryIndex,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres trucks table from a JSON file.
func SeedTrucksPostgres(db *sql.DB, jsonPath string) error {
	data, err := readTruckSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed trucks: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed trucks: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO trucks (
		model,
		manufacturer,
		battery_capacity_kwh,
		consumption_kwh_per_km,
		range_km
	)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (model) DO UPDATE SET
		manufacturer = EXCLUDED.manufacturer,
		battery_capacity_kwh = EXCLUDED.battery_capacity_kwh,
		consumption_kwh_per_km = EXCLUDED.consumption_kwh_per_km,
		range_km = EXCLUDED.range_km;
	`)
	if err != nil {
		return fmt.Errorf("seed trucks: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range data {
		if _, err := stmt.Exec(t.Model, t.Manufacturer, t.BatteryCapacity, t.Consumption, t.RangeKm); err != nil {
			return fmt.Errorf("seed trucks: insert model=%q: %w", t.Model, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed trucks: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres charging_stations table from a JSON file.
func SeedStationsPostgres(db *sql.DB, jsonPath string) error {
	data, err := readStationSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT INTO charging_stations (
		station_id,
		country,
		lat,
		lon,
		truck_suitable,
		operator_name,
		max_power_kw,
		price_per_kwh
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (station_id) DO UPDATE SET
		country = EXCLUDED.country,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		truck_suitable = EXCLUDED.truck_suitable,
		operator_name = EXCLUDED.operator_name,
		max_power_kw = EXCLUDED.max_power_kw,
		price_per_kwh = EXCLUDED.price_per_kwh;
	`)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range data {
		if _, err := stmt.Exec(
			s.StationID, s.Country, s.Lat, s.Lon, s.TruckSuitable,
			s.OperatorName, s.MaxPowerKW, s.PricePerKWh,
		); err != nil {
			return fmt.Errorf("seed stations: insert station_id=%d: %w", s.StationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
