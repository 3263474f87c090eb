package services

import "etruck-route-service/internal/domain"

// Cost of charging energyKWh at a station, using the fallback tariff when
// the station has no published price.
func chargingCostEUR(cfg PlanningConfig, s domain.ChargingStation, energyKWh float64) float64 {
	return energyKWh * effectivePricePerKWh(cfg, s)
}

// Full cost breakdown for a route: driver wage over wheel-turning time,
// per-kilometre depreciation and tolls, plus the summed charging cost.
func routeCosts(cfg PlanningConfig, distanceKm, drivingMin, chargingEUR float64) domain.CostBreakdown {
	c := domain.CostBreakdown{
		DriverEUR:       cfg.DriverWagePerHour * drivingMin / 60,
		DepreciationEUR: cfg.DepreciationPerKm * distanceKm,
		TollsEUR:        cfg.TollsPerKm * distanceKm,
		ChargingEUR:     chargingEUR,
	}
	c.TotalEUR = c.DriverEUR + c.DepreciationEUR + c.TollsEUR + c.ChargingEUR
	return c
}
