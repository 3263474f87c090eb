package services

import (
	"math"
	"testing"

	"etruck-route-service/internal/domain"
)

func TestMaxSafeRange(t *testing.T) {
	cfg := DefaultPlanningConfig()
	truck := domain.TruckProfile{BatteryCapacity: 400, Consumption: 1.0}

	// Full battery: the 4 hour driving stretch caps the range, not the
	// battery. (240-10)/60 * 70 = 268.3 km.
	got := maxSafeRangeKm(cfg, truck, 400)
	if math.Abs(got-268.33) > 0.1 {
		t.Fatalf("range = %.2f, want ~268.33 (time bound)", got)
	}

	// Low battery: (150 - 80 reserve) / 1.0 = 70 km.
	got = maxSafeRangeKm(cfg, truck, 150)
	if math.Abs(got-70) > 0.01 {
		t.Fatalf("range = %.2f, want 70 (battery bound)", got)
	}

	// At or below the reserve nothing is left.
	if got := maxSafeRangeKm(cfg, truck, 60); got != 0 {
		t.Fatalf("range = %.2f, want 0 below reserve", got)
	}
}

func TestPointAtDistance(t *testing.T) {
	line := []domain.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 1},
		{Lat: 0, Lon: 2},
	}

	// One degree of longitude at the equator is ~111.2 km.
	p := pointAtDistanceKm(line, 55.6)
	if math.Abs(p.Lon-0.5) > 0.01 || p.Lat != 0 {
		t.Fatalf("point at 55.6 km = %+v, want lon ~0.5", p)
	}

	// Past the end of the line: the final point.
	p = pointAtDistanceKm(line, 10000)
	if p.Lon != 2 {
		t.Fatalf("point past the end = %+v, want the last vertex", p)
	}

	if p := pointAtDistanceKm(nil, 10); p != (domain.Coordinates{}) {
		t.Fatalf("empty polyline = %+v, want zero value", p)
	}
}

func TestCandidateStations(t *testing.T) {
	around := domain.Coordinates{Lat: 0, Lon: 0}
	stations := []domain.ChargingStation{
		{StationID: 1, Location: domain.Coordinates{Lat: 0, Lon: 0.1}, TruckSuitable: true},
		{StationID: 2, Location: domain.Coordinates{Lat: 0, Lon: 0.3}, TruckSuitable: true},
		{StationID: 3, Location: domain.Coordinates{Lat: 0, Lon: 0.2}, TruckSuitable: false},
		{StationID: 4, Location: domain.Coordinates{Lat: 0, Lon: 5.0}, TruckSuitable: true},
		{StationID: 5, Location: domain.Coordinates{Lat: 0, Lon: 0.2}, TruckSuitable: true},
	}

	got := candidateStations(stations, around, 50, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	// Closest first: station 1 (11 km), then station 5 (22 km). Station 3
	// is closer than 2 but not truck suitable; station 4 is out of range.
	if got[0].StationID != 1 || got[1].StationID != 5 {
		t.Fatalf("candidates = %d, %d, want 1, 5", got[0].StationID, got[1].StationID)
	}
}

func TestSelectBestStation(t *testing.T) {
	cfg := DefaultPlanningConfig()

	cheapSlow := domain.ChargingStation{StationID: 1, MaxPowerKW: 50, PricePerKWh: 0.30}
	fastPricey := domain.ChargingStation{StationID: 2, MaxPowerKW: 400, PricePerKWh: 0.31}
	noPower := domain.ChargingStation{StationID: 3, PricePerKWh: 0.10}

	// 0.7*0.30 + 0.3/50 = 0.216 vs 0.7*0.31 + 0.3/400 = 0.2178.
	best, ok := selectBestStation(cfg, []domain.ChargingStation{cheapSlow, fastPricey, noPower})
	if !ok {
		t.Fatal("expected a station")
	}
	if best.StationID != 1 {
		t.Fatalf("best = %d, want 1", best.StationID)
	}

	// Without a power rating a station cannot be scored.
	if _, ok := selectBestStation(cfg, []domain.ChargingStation{noPower}); ok {
		t.Fatal("station without power rating must not be selected")
	}

	if _, ok := selectBestStation(cfg, nil); ok {
		t.Fatal("empty candidate list must not yield a station")
	}
}

func TestEffectivePriceFallback(t *testing.T) {
	cfg := DefaultPlanningConfig()

	priced := domain.ChargingStation{PricePerKWh: 0.42}
	unpriced := domain.ChargingStation{}

	if got := effectivePricePerKWh(cfg, priced); got != 0.42 {
		t.Fatalf("price = %.2f, want 0.42", got)
	}
	if got := effectivePricePerKWh(cfg, unpriced); got != cfg.ChargingFallbackEUR {
		t.Fatalf("price = %.2f, want the %.2f fallback", got, cfg.ChargingFallbackEUR)
	}
}
