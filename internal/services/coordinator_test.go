package services

import (
	"context"
	"testing"

	"etruck-route-service/internal/domain"
)

func TestPlanFleetSameStationSwap(t *testing.T) {
	// Two routes running the same corridor in opposite directions, with a
	// single station halfway. Both trucks must charge there in round one,
	// head onward in opposing directions, and exchange drivers on the spot.
	stations := []domain.ChargingStation{
		{
			StationID:     11,
			Location:      domain.Coordinates{Lat: 0, Lon: 2},
			TruckSuitable: true,
			MaxPowerKW:    300,
			PricePerKWh:   0.40,
		},
	}

	planner := NewPlanner(DefaultPlanningConfig(), synthProvider(), testTrucks(), stations)

	fleet, err := planner.PlanFleet(context.Background(), []domain.RouteRequest{
		{
			RouteName:  "eastbound",
			Start:      domain.Coordinates{Lat: 0, Lon: 0},
			End:        domain.Coordinates{Lat: 0, Lon: 4},
			TruckModel: "eActros 600",
		},
		{
			RouteName:  "westbound",
			Start:      domain.Coordinates{Lat: 0, Lon: 4},
			End:        domain.Coordinates{Lat: 0, Lon: 0},
			TruckModel: "eActros 600",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fleet.Swaps) != 1 {
		t.Fatalf("expected 1 swap, got %d", len(fleet.Swaps))
	}
	swap := fleet.Swaps[0]
	if swap.Reason != swapReasonSameStation {
		t.Fatalf("swap reason = %q, want %q", swap.Reason, swapReasonSameStation)
	}
	if swap.StationID != 11 {
		t.Fatalf("swap at station %d, want 11", swap.StationID)
	}
	if swap.Round != 1 {
		t.Fatalf("swap in round %d, want 1", swap.Round)
	}
	if swap.DetourKm != 0 {
		t.Fatalf("same-station swap detour = %.1f, want 0", swap.DetourKm)
	}
	if swap.AlignmentDot > -0.99 {
		t.Fatalf("alignment dot = %.2f, want ~-1 for head-on routes", swap.AlignmentDot)
	}

	for i, plan := range fleet.Routes {
		if !plan.Feasible {
			t.Fatalf("route %d infeasible: %s", i, plan.Message)
		}
		if len(plan.Segments) != 2 {
			t.Fatalf("route %d: %d segments, want 2", i, len(plan.Segments))
		}
		if len(plan.Swaps) != 1 {
			t.Fatalf("route %d: %d swaps recorded, want 1", i, len(plan.Swaps))
		}
	}

	// The segment after the swap is driven by the other route's starter.
	east, west := fleet.Routes[0], fleet.Routes[1]
	if east.Segments[1].DriverID != west.Segments[0].DriverID {
		t.Fatal("eastbound truck not taken over by the westbound driver")
	}
	if west.Segments[1].DriverID != east.Segments[0].DriverID {
		t.Fatal("westbound truck not taken over by the eastbound driver")
	}

	if fleet.Rounds != 2 {
		t.Fatalf("rounds = %d, want 2", fleet.Rounds)
	}
	if len(fleet.Iterations) != 4 {
		t.Fatalf("hop records = %d, want 4", len(fleet.Iterations))
	}
}

func TestPlanFleetRendezvousSwap(t *testing.T) {
	// Opposing routes that charge at different stations: the detector must
	// fall back to a shared rendezvous station between the two.
	stations := []domain.ChargingStation{
		{StationID: 1, Location: domain.Coordinates{Lat: 0, Lon: 2.3}, TruckSuitable: true, MaxPowerKW: 400, PricePerKWh: 0.30},
		{StationID: 2, Location: domain.Coordinates{Lat: 0, Lon: 1.7}, TruckSuitable: true, MaxPowerKW: 400, PricePerKWh: 0.30},
		{StationID: 3, Location: domain.Coordinates{Lat: 0, Lon: 2.0}, TruckSuitable: true, MaxPowerKW: 150, PricePerKWh: 0.60},
	}

	planner := NewPlanner(DefaultPlanningConfig(), synthProvider(), testTrucks(), stations)

	fleet, err := planner.PlanFleet(context.Background(), []domain.RouteRequest{
		{
			RouteName:  "eastbound",
			Start:      domain.Coordinates{Lat: 0, Lon: 0},
			End:        domain.Coordinates{Lat: 0, Lon: 4},
			TruckModel: "eActros 600",
		},
		{
			RouteName:  "westbound",
			Start:      domain.Coordinates{Lat: 0, Lon: 4},
			End:        domain.Coordinates{Lat: 0, Lon: 0},
			TruckModel: "eActros 600",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fleet.Swaps) != 1 {
		t.Fatalf("expected 1 swap, got %d", len(fleet.Swaps))
	}
	swap := fleet.Swaps[0]
	if swap.Reason != swapReasonRendezvous {
		t.Fatalf("swap reason = %q, want %q", swap.Reason, swapReasonRendezvous)
	}
	if swap.StationID != 3 {
		t.Fatalf("rendezvous at station %d, want 3", swap.StationID)
	}
	if swap.DetourKm <= 0 {
		t.Fatalf("rendezvous detour = %.1f, want > 0", swap.DetourKm)
	}

	for i, plan := range fleet.Routes {
		if !plan.Feasible {
			t.Fatalf("route %d infeasible: %s", i, plan.Message)
		}
	}
}

func TestDetectSwapSkipsPairThatAlreadySwapped(t *testing.T) {
	// Three trucks around one station: 0 and 1 head-on at the station
	// itself, 2 opposing 0 from a parallel corridor 11 km north. Once the
	// 0/1 pair is on record it must stand aside for the 0/2 pair instead
	// of swapping back and forth.
	stations := []domain.ChargingStation{
		{StationID: 21, Location: domain.Coordinates{Lat: 0, Lon: 2}, TruckSuitable: true, MaxPowerKW: 300, PricePerKWh: 0.40},
	}
	cursors := []*routeCursor{
		{index: 0, st: &hopState{
			pos:  domain.Coordinates{Lat: 0, Lon: 2},
			dest: domain.Coordinates{Lat: 0, Lon: 4},
		}},
		{index: 1, st: &hopState{
			pos:  domain.Coordinates{Lat: 0, Lon: 2},
			dest: domain.Coordinates{Lat: 0, Lon: 0},
		}},
		{index: 2, st: &hopState{
			pos:  domain.Coordinates{Lat: 0.1, Lon: 2},
			dest: domain.Coordinates{Lat: 0.1, Lon: 0},
		}},
	}
	cfg := DefaultPlanningConfig()

	cand, ok := detectSwap(cfg, cursors, stations, map[[2]int]bool{})
	if !ok {
		t.Fatal("expected a swap candidate")
	}
	if cand.i != 0 || cand.j != 1 {
		t.Fatalf("first pick = (%d,%d), want the zero-detour pair (0,1)", cand.i, cand.j)
	}

	cand, ok = detectSwap(cfg, cursors, stations, map[[2]int]bool{{0, 1}: true})
	if !ok {
		t.Fatal("expected the remaining opposing pair to still qualify")
	}
	if cand.i != 0 || cand.j != 2 {
		t.Fatalf("pick = (%d,%d), want (0,2) once (0,1) has swapped", cand.i, cand.j)
	}
	if cand.reason != swapReasonRendezvous {
		t.Fatalf("reason = %q, want %q", cand.reason, swapReasonRendezvous)
	}
	if cand.detourKm <= 0 {
		t.Fatalf("detour = %.1f, want > 0 for the offset pair", cand.detourKm)
	}
}

func TestPlanFleetNoSwapWhenAligned(t *testing.T) {
	// Two routes heading the same way never qualify for a swap.
	stations := []domain.ChargingStation{
		{StationID: 11, Location: domain.Coordinates{Lat: 0, Lon: 2}, TruckSuitable: true, MaxPowerKW: 300, PricePerKWh: 0.40},
		{StationID: 12, Location: domain.Coordinates{Lat: 0.5, Lon: 2}, TruckSuitable: true, MaxPowerKW: 300, PricePerKWh: 0.40},
	}

	planner := NewPlanner(DefaultPlanningConfig(), synthProvider(), testTrucks(), stations)

	fleet, err := planner.PlanFleet(context.Background(), []domain.RouteRequest{
		{
			RouteName:  "convoy lead",
			Start:      domain.Coordinates{Lat: 0, Lon: 0},
			End:        domain.Coordinates{Lat: 0, Lon: 4},
			TruckModel: "eActros 600",
		},
		{
			RouteName:  "convoy tail",
			Start:      domain.Coordinates{Lat: 0.5, Lon: 0},
			End:        domain.Coordinates{Lat: 0.5, Lon: 4},
			TruckModel: "eActros 600",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fleet.Swaps) != 0 {
		t.Fatalf("expected no swaps for aligned routes, got %d", len(fleet.Swaps))
	}
	for i, plan := range fleet.Routes {
		if !plan.Feasible {
			t.Fatalf("route %d infeasible: %s", i, plan.Message)
		}
	}
}

func TestPlanFleetFailedRouteDoesNotStopOthers(t *testing.T) {
	stations := []domain.ChargingStation{
		{StationID: 11, Location: domain.Coordinates{Lat: 0, Lon: 2}, TruckSuitable: true, MaxPowerKW: 300, PricePerKWh: 0.40},
	}

	planner := NewPlanner(DefaultPlanningConfig(), synthProvider(), testTrucks(), stations)

	fleet, err := planner.PlanFleet(context.Background(), []domain.RouteRequest{
		{
			RouteName:  "covered corridor",
			Start:      domain.Coordinates{Lat: 0, Lon: 0},
			End:        domain.Coordinates{Lat: 0, Lon: 4},
			TruckModel: "eActros 600",
		},
		{
			// Heads away from the only station, so its first charge fails.
			RouteName:  "empty corridor",
			Start:      domain.Coordinates{Lat: 20, Lon: 0},
			End:        domain.Coordinates{Lat: 20, Lon: 4},
			TruckModel: "eActros 600",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !fleet.Routes[0].Feasible {
		t.Fatalf("covered route infeasible: %s", fleet.Routes[0].Message)
	}
	if fleet.Routes[1].Feasible {
		t.Fatal("route without stations must be infeasible")
	}
	if fleet.Routes[1].Message == "" {
		t.Fatal("expected an explanatory message on the failed route")
	}
}

func TestPlanFleetEmpty(t *testing.T) {
	planner := NewPlanner(DefaultPlanningConfig(), synthProvider(), testTrucks(), nil)

	fleet, err := planner.PlanFleet(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fleet.Routes) != 0 || fleet.Rounds != 0 {
		t.Fatalf("empty request produced %d routes, %d rounds", len(fleet.Routes), fleet.Rounds)
	}
}
