package services

import (
	"context"
	"fmt"
	"sync"

	"etruck-route-service/internal/domain"
)

// One route's moving parts during a fleet run. Owned by the coordinator;
// hop goroutines get exclusive access to their own cursor for the duration
// of a round and everything is merged back at the round barrier.
type routeCursor struct {
	index         int
	plan          *domain.RoutePlan
	driver        *domain.Driver
	st            *hopState
	done          bool
	failed        bool
	lastStationID int
}

func (c *routeCursor) moving() bool {
	return !c.done && !c.failed
}

type hopResult struct {
	out hopOutcome
	err error
}

// PlanFleet runs several routes in lockstep rounds. Each round every active
// truck advances one hop concurrently; at the barrier the coordinator merges
// the results, looks for a worthwhile driver swap between opposing routes,
// and applies at most one. Routes that hit a planning dead end are marked
// infeasible without stopping the rest of the fleet.
func (p *Planner) PlanFleet(ctx context.Context, reqs []domain.RouteRequest) (*domain.FleetPlan, error) {
	if len(reqs) == 0 {
		return &domain.FleetPlan{
			Routes:     []*domain.RoutePlan{},
			Drivers:    []*domain.Driver{},
			Swaps:      []domain.TruckSwap{},
			Iterations: []domain.HopRecord{},
			Message:    "no routes requested",
		}, nil
	}

	cursors := make([]*routeCursor, len(reqs))
	for i, req := range reqs {
		truck, ok := p.trucks[req.TruckModel]
		if !ok {
			return nil, fmt.Errorf("plan fleet: route %q: model %q: %w",
				req.RouteName, req.TruckModel, domain.ErrUnknownTruckModel)
		}

		charge := req.StartingChargeKWh
		if charge <= 0 || charge > truck.BatteryCapacity {
			charge = truck.BatteryCapacity
		}

		driver := domain.NewDriver(req.Start, i)
		cursors[i] = &routeCursor{
			index:  i,
			driver: driver,
			plan: &domain.RoutePlan{
				RouteName:         routeName(req, truck),
				TruckModel:        req.TruckModel,
				Driver:            driver,
				Segments:          []domain.Segment{},
				ChargingStops:     []domain.ChargingStop{},
				Breaks:            []domain.DriverBreak{},
				Swaps:             []domain.TruckSwap{},
				StartingChargeKWh: charge,
			},
			st: &hopState{
				truck:     truck,
				driverID:  driver.DriverID,
				pos:       req.Start,
				dest:      req.End,
				chargeKWh: charge,
				tracker:   newComplianceTracker(p.cfg),
			},
		}
	}

	fleet := &domain.FleetPlan{
		Routes:     make([]*domain.RoutePlan, len(cursors)),
		Drivers:    make([]*domain.Driver, len(cursors)),
		Swaps:      []domain.TruckSwap{},
		Iterations: []domain.HopRecord{},
	}
	for i, c := range cursors {
		fleet.Routes[i] = c.plan
		fleet.Drivers[i] = c.driver
	}

	swappedPairs := map[[2]int]bool{}
	for round := 1; round <= p.cfg.MaxRounds; round++ {
		active := activeCursors(cursors)
		if len(active) == 0 {
			break
		}
		fleet.Rounds = round

		if err := p.runRound(ctx, active, fleet, round); err != nil {
			return nil, err
		}

		if cand, ok := detectSwap(p.cfg, cursors, p.stations, swappedPairs); ok {
			p.applySwap(cursors[cand.i], cursors[cand.j], cand, fleet, round)
			swappedPairs[[2]int{cand.i, cand.j}] = true
		}
	}

	for _, c := range cursors {
		if c.moving() {
			c.failed = true
			markInfeasible(c.plan, fmt.Sprintf("coordination stopped after %d rounds", p.cfg.MaxRounds))
		}
	}

	sealFleet(p.cfg, fleet, cursors)
	return fleet, nil
}

// One bulk-synchronous round: every active cursor advances one hop in its
// own goroutine, then results are merged in route order.
func (p *Planner) runRound(
	ctx context.Context,
	active []*routeCursor,
	fleet *domain.FleetPlan,
	round int,
) error {
	results := make([]hopResult, len(active))

	var wg sync.WaitGroup
	for i, c := range active {
		wg.Add(1)
		go func(i int, c *routeCursor) {
			defer wg.Done()
			out, err := p.advance(ctx, c.st)
			results[i] = hopResult{out: out, err: err}
		}(i, c)
	}
	wg.Wait()

	for i, c := range active {
		r := results[i]
		if r.err != nil {
			if !isPlanningDeadEnd(r.err) {
				return fmt.Errorf("plan fleet: route %q: %w", c.plan.RouteName, r.err)
			}
			c.failed = true
			markInfeasible(c.plan, r.err.Error())
			continue
		}

		start := c.driver.Current
		applyOutcome(c.plan, r.out)
		c.driver.Current = c.st.pos

		c.lastStationID = 0
		stopEUR := 0.0
		if r.out.stop != nil {
			c.lastStationID = r.out.stop.Station.StationID
			stopEUR = r.out.stop.CostEUR
		}

		hopCosts := routeCosts(p.cfg, r.out.distanceKm, r.out.driveMin, stopEUR)
		fleet.Iterations = append(fleet.Iterations, domain.HopRecord{
			Round:       round,
			RouteIndex:  c.index,
			Start:       start,
			End:         c.st.pos,
			DistanceKm:  r.out.distanceKm,
			DurationMin: r.out.driveMin,
			CostEUR:     hopCosts.TotalEUR,
		})

		if r.out.arrived {
			c.done = true
		}
	}
	return nil
}

// Exchange the drivers of two routes at the chosen station. Driving-hours
// state travels with the driver, so the trackers move too; truck, charge
// and destination stay with the route.
func (p *Planner) applySwap(a, b *routeCursor, cand swapCandidate, fleet *domain.FleetPlan, round int) {
	a.st.driverID, b.st.driverID = b.st.driverID, a.st.driverID
	a.st.tracker, b.st.tracker = b.st.tracker, a.st.tracker
	a.driver, b.driver = b.driver, a.driver
	a.driver.AssignedRoute, b.driver.AssignedRoute = a.index, b.index
	a.driver.Current = a.st.pos
	b.driver.Current = b.st.pos
	a.plan.Driver = a.driver
	b.plan.Driver = b.driver

	swap := domain.TruckSwap{
		StationID:    cand.station.StationID,
		Location:     cand.station.Location,
		Driver1ID:    b.st.driverID, // the driver who just left route a
		Driver2ID:    a.st.driverID,
		AlignmentDot: cand.dot,
		DetourKm:     cand.detourKm,
		Round:        round,
		Reason:       cand.reason,
	}
	a.plan.Swaps = append(a.plan.Swaps, swap)
	b.plan.Swaps = append(b.plan.Swaps, swap)
	fleet.Swaps = append(fleet.Swaps, swap)
	fleet.Drivers[a.index], fleet.Drivers[b.index] = a.driver, b.driver
}

func activeCursors(cursors []*routeCursor) []*routeCursor {
	var active []*routeCursor
	for _, c := range cursors {
		if c.moving() {
			active = append(active, c)
		}
	}
	return active
}

// Finalize every completed plan and roll the fleet totals up.
func sealFleet(cfg PlanningConfig, fleet *domain.FleetPlan, cursors []*routeCursor) {
	completed := 0
	for _, c := range cursors {
		if c.done {
			finishPlan(cfg, c.plan, c.st)
			completed++
		}
		fleet.TotalDistanceKm += c.plan.TotalDistanceKm
		fleet.TotalCostEUR += c.plan.Costs.TotalEUR
	}
	fleet.Message = fmt.Sprintf(
		"%d/%d routes completed in %d rounds, %d swaps",
		completed, len(cursors), fleet.Rounds, len(fleet.Swaps),
	)
}
