package services

import (
	"math"
	"testing"

	"etruck-route-service/internal/domain"
)

func TestRouteCosts(t *testing.T) {
	cfg := DefaultPlanningConfig()

	// 300 km and 4 hours of driving: 140 wage + 15 depreciation + 0 tolls.
	c := routeCosts(cfg, 300, 240, 80)
	if math.Abs(c.DriverEUR-140) > 0.01 {
		t.Fatalf("driver = %.2f, want 140", c.DriverEUR)
	}
	if math.Abs(c.DepreciationEUR-15) > 0.01 {
		t.Fatalf("depreciation = %.2f, want 15", c.DepreciationEUR)
	}
	if c.TollsEUR != 0 {
		t.Fatalf("tolls = %.2f, want 0", c.TollsEUR)
	}
	if c.ChargingEUR != 80 {
		t.Fatalf("charging = %.2f, want 80", c.ChargingEUR)
	}
	if math.Abs(c.TotalEUR-235) > 0.01 {
		t.Fatalf("total = %.2f, want 235", c.TotalEUR)
	}
}

func TestChargingCost(t *testing.T) {
	cfg := DefaultPlanningConfig()

	priced := domain.ChargingStation{PricePerKWh: 0.50}
	if got := chargingCostEUR(cfg, priced, 100); got != 50 {
		t.Fatalf("cost = %.2f, want 50", got)
	}

	// No published price: the fallback tariff applies.
	unpriced := domain.ChargingStation{}
	if got := chargingCostEUR(cfg, unpriced, 100); math.Abs(got-60) > 0.01 {
		t.Fatalf("cost = %.2f, want 60 at the fallback tariff", got)
	}
}
