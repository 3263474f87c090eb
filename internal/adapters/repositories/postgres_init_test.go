package repositories

// The Postgres seeders validate their seed files before opening a
// transaction, so the validation path runs without a live server. The
// SQL itself only runs against the shared instance dbtool targets.

import "testing"

func TestSeedTrucksPostgresRejectsBadData(t *testing.T) {
	seed := writeSeed(t, "trucks.json", `[
		{"manufacturer": "Volvo", "model": "", "battery_capacity_kwh": 540, "consumption_kwh_per_km": 1.25}
	]`)
	if err := SeedTrucksPostgres(nil, seed); err == nil {
		t.Fatal("expected an error for an empty model name")
	}
}

func TestSeedStationsPostgresRejectsBadData(t *testing.T) {
	seed := writeSeed(t, "stations.json", `[
		{"station_id": 0, "country": "DE", "lat": 52.39, "lon": 9.68, "truck_suitable": true, "operator_name": "Ionity", "max_power_kw": 350, "price_per_kwh": 0.59}
	]`)
	if err := SeedStationsPostgres(nil, seed); err == nil {
		t.Fatal("expected an error for a non-positive station id")
	}
}
