package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTrucksQuery := `
	CREATE TABLE IF NOT EXISTS trucks (
		model TEXT PRIMARY KEY,
		manufacturer TEXT NOT NULL,
		battery_capacity_kwh REAL NOT NULL,
		consumption_kwh_per_km REAL NOT NULL,
		range_km REAL NOT NULL
	);
	`

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS charging_stations (
        station_id INTEGER PRIMARY KEY,
        country TEXT NOT NULL,
        lat REAL NOT NULL,
        lon REAL NOT NULL,
        truck_suitable INTEGER NOT NULL,
        operator_name TEXT NOT NULL,
        max_power_kw REAL NOT NULL,
        price_per_kwh REAL NOT NULL
    );
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters INTEGER NOT NULL,
        duration_seconds INTEGER NOT NULL,
        polyline TEXT NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createStationCountryIndex := `
	CREATE INDEX IF NOT EXISTS idx_charging_stations_country
    ON charging_stations(country);
	`

	statements := []string{
		createTrucksQuery,
		createStationsQuery,
		createRouteCacheQuery,
		createStationCountryIndex,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type TruckSeed struct {
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	BatteryCapacity float64 `json:"battery_capacity_kwh"`
	Consumption     float64 `json:"consumption_kwh_per_km"`
	RangeKm         float64 `json:"range_km"`
}

// Read and validate a truck seed file. Shared by the SQLite and Postgres
// seeders.
func readTruckSeeds(jsonPath string) ([]TruckSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []TruckSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Model) == "" {
			return nil, fmt.Errorf("item at index %d: model cannot be empty", i+1)
		}
		if item.BatteryCapacity <= 0 || item.Consumption <= 0 {
			return nil, fmt.Errorf("model %q: battery and consumption must be positive", item.Model)
		}
	}
	return data, nil
}

// Populate the trucks table from a JSON file.
func SeedTrucksFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO trucks (
		model,
		manufacturer,
		battery_capacity_kwh,
		consumption_kwh_per_km,
		range_km
	)
	VALUES (?, ?, ?, ?, ?);
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

type StationSeed struct {
	StationID     int     `json:"station_id"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	TruckSuitable bool    `json:"truck_suitable"`
	OperatorName  string  `json:"operator_name"`
	MaxPowerKW    float64 `json:"max_power_kw"`
	PricePerKWh   float64 `json:"price_per_kwh"`
}

// Read and validate a charging station seed file.
func readStationSeeds(jsonPath string) ([]StationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []StationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for i, item := range data {
		if item.StationID <= 0 {
			return nil, fmt.Errorf("invalid station_id at index %d: %d", i+1, item.StationID)
		}
	}
	return data, nil
}

// Populate the charging_stations table from a JSON file.
func SeedStationsFromJSON(db *sql.DB, jsonPath string) error {
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
	INSERT OR REPLACE INTO charging_stations (
		station_id,
		country,
		lat,
		lon,
		truck_suitable,
		operator_name,
		max_power_kw,
		price_per_kwh
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
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
