package services

import (
	"sort"

	"etruck-route-service/internal/domain"
)

// Whether the truck can run the whole leg in one go: enough energy within
// the safety margin, enough charge on board, and a leg short enough to be
// driven without a charging stop.
func directReachable(cfg PlanningConfig, truck domain.TruckProfile, chargeKWh, distanceKm, durationMin float64) bool {
	energy := truck.EnergyForDistance(distanceKm)
	if energy > cfg.SafetyMargin*truck.BatteryCapacity {
		return false
	}
	if energy > chargeKWh {
		return false
	}
	return durationMin <= cfg.MaxDirectDriveMin
}

// Farthest distance the truck should drive before its next stop. Bounded by
// the battery (down to the reserve floor) and by the preferred continuous
// driving stretch at cruise speed, whichever bites first.
func maxSafeRangeKm(cfg PlanningConfig, truck domain.TruckProfile, chargeKWh float64) float64 {
	usable := chargeKWh - cfg.ReserveFraction*truck.BatteryCapacity
	if usable < 0 {
		usable = 0
	}
	batteryKm := usable / truck.Consumption

	timeKm := (cfg.SegmentTargetMin - cfg.SegmentToleranceMin) / 60 * cfg.AvgSpeedKmh

	if batteryKm < timeKm {
		return batteryKm
	}
	return timeKm
}

// Walk the polyline and return the point that lies targetKm along it.
// Interpolates within the crossing segment; past the end, returns the
// final point.
func pointAtDistanceKm(polyline []domain.Coordinates, targetKm float64) domain.Coordinates {
	if len(polyline) == 0 {
		return domain.Coordinates{}
	}

	traveled := 0.0
	for i := 1; i < len(polyline); i++ {
		step := polyline[i-1].DistanceKm(polyline[i])
		if step <= 0 {
			continue
		}
		if traveled+step >= targetKm {
			t := (targetKm - traveled) / step
			return polyline[i-1].Interpolate(polyline[i], t)
		}
		traveled += step
	}
	return polyline[len(polyline)-1]
}

// Truck-suitable stations within radiusKm of the reference point, closest
// first, at most k of them. Distances use the cheap planar approximation;
// ranking is all that matters here.
func candidateStations(stations []domain.ChargingStation, around domain.Coordinates, radiusKm float64, k int) []domain.ChargingStation {
	type ranked struct {
		station domain.ChargingStation
		distKm  float64
	}

	inRange := make([]ranked, 0, k)
	for _, s := range stations {
		if !s.TruckSuitable {
			continue
		}
		d := around.ApproxDistanceKm(s.Location)
		if d > radiusKm {
			continue
		}
		inRange = append(inRange, ranked{station: s, distKm: d})
	}

	sort.Slice(inRange, func(i, j int) bool {
		if inRange[i].distKm != inRange[j].distKm {
			return inRange[i].distKm < inRange[j].distKm
		}
		return inRange[i].station.StationID < inRange[j].station.StationID
	})

	if len(inRange) > k {
		inRange = inRange[:k]
	}

	out := make([]domain.ChargingStation, 0, len(inRange))
	for _, r := range inRange {
		out = append(out, r.station)
	}
	return out
}

// Station price per kWh, substituting the configured fallback when the
// station publishes none.
func effectivePricePerKWh(cfg PlanningConfig, s domain.ChargingStation) float64 {
	if s.PricePerKWh > 0 {
		return s.PricePerKWh
	}
	return cfg.ChargingFallbackEUR
}

// Pick the cheapest-to-use candidate. Lower is better: the score blends the
// per-kWh price with the inverse of charger power, so a fast expensive
// station can beat a slow cheap one. Stations without a published power
// rating are skipped.
func selectBestStation(cfg PlanningConfig, candidates []domain.ChargingStation) (domain.ChargingStation, bool) {
	best := domain.ChargingStation{}
	bestScore := 0.0
	found := false

	for _, s := range candidates {
		if s.MaxPowerKW <= 0 {
			continue
		}
		score := cfg.StationScoreCostW*effectivePricePerKWh(cfg, s) +
			cfg.StationScorePowerW/s.MaxPowerKW
		if !found || score < bestScore {
			best = s
			bestScore = score
			found = true
		}
	}
	return best, found
}
