package services

import (
	"context"
	"errors"
	"fmt"

	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/ports"
)

// Planner turns route requests into segmented, compliance-checked plans.
// Truck profiles and stations are loaded once at construction; the routing
// provider is consulted per leg.
type Planner struct {
	cfg      PlanningConfig
	provider ports.RouteProvider
	trucks   map[string]domain.TruckProfile
	stations []domain.ChargingStation
}

func NewPlanner(
	cfg PlanningConfig,
	provider ports.RouteProvider,
	trucks map[string]domain.TruckProfile,
	stations []domain.ChargingStation,
) *Planner {
	return &Planner{
		cfg:      cfg,
		provider: provider,
		trucks:   trucks,
		stations: stations,
	}
}

// Mutable position of one truck mid-plan. advance moves it one hop at a
// time toward its destination.
type hopState struct {
	truck     domain.TruckProfile
	driverID  string
	pos       domain.Coordinates
	dest      domain.Coordinates
	chargeKWh float64
	clockMin  float64
	tracker   complianceTracker
	hops      int
	lastStop  *stopInfo
}

// Everything one hop produced.
type hopOutcome struct {
	segments   []domain.Segment
	stop       *domain.ChargingStop
	breaks     []domain.DriverBreak
	arrived    bool
	distanceKm float64
	driveMin   float64
}

// Advance the truck by one hop: either the final leg straight to the
// destination, or a leg to the best reachable charging station followed by
// a charge back up. Any breaks due before the leg are inserted first.
func (p *Planner) advance(ctx context.Context, st *hopState) (hopOutcome, error) {
	if st.hops >= p.cfg.MaxHops {
		return hopOutcome{}, fmt.Errorf("advance: %d hops from %s: %w",
			st.hops, st.pos.Key(), domain.ErrHopLimitExceeded)
	}
	st.hops++

	res, err := p.provider.GetRoute(ctx, st.pos, st.dest)
	if err != nil {
		return hopOutcome{}, fmt.Errorf("advance: route %s -> %s: %w",
			st.pos.Key(), st.dest.Key(), err)
	}
	distKm := float64(res.DistanceMeters) / 1000
	durMin := float64(res.DurationSeconds) / 60

	if directReachable(p.cfg, st.truck, st.chargeKWh, distKm, durMin) {
		return p.driveDirect(st, distKm, durMin), nil
	}
	return p.driveToStation(ctx, st, res.Polyline)
}

// Final leg: no charging stop, the truck arrives at its destination.
func (p *Planner) driveDirect(st *hopState, distKm, durMin float64) hopOutcome {
	breaks, added := st.tracker.breaksBefore(durMin, st.pos, st.clockMin, st.lastStop)
	st.clockMin += added

	seg := domain.Segment{
		Start:       st.pos,
		End:         st.dest,
		DistanceKm:  distKm,
		DurationMin: durMin,
		EnergyKWh:   st.truck.EnergyForDistance(distKm),
		DriverID:    st.driverID,
	}

	st.chargeKWh -= seg.EnergyKWh
	st.clockMin += durMin
	st.tracker.record(durMin)
	st.pos = st.dest
	st.lastStop = nil

	return hopOutcome{
		segments:   []domain.Segment{seg},
		breaks:     breaks,
		arrived:    true,
		distanceKm: distKm,
		driveMin:   durMin,
	}
}

// Intermediate leg: walk the route out to the truck's safe range, pick the
// best station near that point, drive to it and charge back up.
func (p *Planner) driveToStation(
	ctx context.Context,
	st *hopState,
	polyline []domain.Coordinates,
) (hopOutcome, error) {
	rangeKm := maxSafeRangeKm(p.cfg, st.truck, st.chargeKWh)
	if rangeKm <= 0 {
		return hopOutcome{}, fmt.Errorf("advance: battery at reserve near %s: %w",
			st.pos.Key(), domain.ErrNoSuitableStation)
	}

	target := pointAtDistanceKm(polyline, rangeKm)
	candidates := candidateStations(p.stations, target, p.cfg.StationRadiusKm, p.cfg.StationCandidates)
	station, ok := selectBestStation(p.cfg, candidates)
	if !ok {
		return hopOutcome{}, fmt.Errorf("advance: no chargeable station within %.0fkm of %s: %w",
			p.cfg.StationRadiusKm, target.Key(), domain.ErrNoSuitableStation)
	}

	leg, err := p.provider.GetRoute(ctx, st.pos, station.Location)
	if err != nil {
		return hopOutcome{}, fmt.Errorf("advance: route %s -> station %d: %w",
			st.pos.Key(), station.StationID, err)
	}
	legKm := float64(leg.DistanceMeters) / 1000
	legMin := float64(leg.DurationSeconds) / 60

	energy := st.truck.EnergyForDistance(legKm)
	if energy > st.chargeKWh {
		return hopOutcome{}, fmt.Errorf("advance: station %d beyond remaining range: %w",
			station.StationID, domain.ErrNoSuitableStation)
	}

	breaks, added := st.tracker.breaksBefore(legMin, st.pos, st.clockMin, st.lastStop)
	st.clockMin += added

	seg := domain.Segment{
		Start:       st.pos,
		End:         station.Location,
		DistanceKm:  legKm,
		DurationMin: legMin,
		EnergyKWh:   energy,
		DriverID:    st.driverID,
	}

	arrival := st.chargeKWh - energy
	departure := p.cfg.ChargeTarget * st.truck.BatteryCapacity
	if arrival >= departure {
		// Already above the target. Top up all the way instead.
		departure = st.truck.BatteryCapacity
	}
	charged := departure - arrival
	chargingMin := charged / station.MaxPowerKW * 60

	stop := &domain.ChargingStop{
		Station:            station,
		ArrivalChargeKWh:   arrival,
		DepartureChargeKWh: departure,
		ChargingMin:        chargingMin,
		CostEUR:            chargingCostEUR(p.cfg, station, charged),
	}

	st.chargeKWh = departure
	st.clockMin += legMin + chargingMin
	st.tracker.record(legMin)
	st.pos = station.Location
	st.lastStop = &stopInfo{location: station.Location, chargingMin: chargingMin}

	return hopOutcome{
		segments:   []domain.Segment{seg},
		stop:       stop,
		breaks:     breaks,
		distanceKm: legKm,
		driveMin:   legMin,
	}, nil
}

// PlanRoute produces a complete plan for one route request. Planning dead
// ends (no reachable station, hop limit, no drivable path) come back as an
// infeasible plan with an explanatory message; unknown truck models and
// provider outages are returned as errors.
func (p *Planner) PlanRoute(ctx context.Context, req domain.RouteRequest) (*domain.RoutePlan, error) {
	truck, ok := p.trucks[req.TruckModel]
	if !ok {
		return nil, fmt.Errorf("plan route %q: model %q: %w",
			req.RouteName, req.TruckModel, domain.ErrUnknownTruckModel)
	}

	charge := req.StartingChargeKWh
	if charge <= 0 || charge > truck.BatteryCapacity {
		charge = truck.BatteryCapacity
	}

	driver := domain.NewDriver(req.Start, 0)
	plan := &domain.RoutePlan{
		RouteName:         routeName(req, truck),
		TruckModel:        req.TruckModel,
		Driver:            driver,
		Segments:          []domain.Segment{},
		ChargingStops:     []domain.ChargingStop{},
		Breaks:            []domain.DriverBreak{},
		Swaps:             []domain.TruckSwap{},
		StartingChargeKWh: charge,
	}

	st := &hopState{
		truck:     truck,
		driverID:  driver.DriverID,
		pos:       req.Start,
		dest:      req.End,
		chargeKWh: charge,
		tracker:   newComplianceTracker(p.cfg),
	}

	for {
		out, err := p.advance(ctx, st)
		if err != nil {
			if isPlanningDeadEnd(err) {
				markInfeasible(plan, err.Error())
				return plan, nil
			}
			return nil, err
		}
		applyOutcome(plan, out)
		if out.arrived {
			break
		}
	}

	finishPlan(p.cfg, plan, st)
	return plan, nil
}

// Requests without a route name get one from the assigned truck.
func routeName(req domain.RouteRequest, truck domain.TruckProfile) string {
	if req.RouteName != "" {
		return req.RouteName
	}
	return fmt.Sprintf("%s %s Route", truck.Manufacturer, truck.Model)
}

// A dead-ended plan carries only the diagnostic message; partial segments
// and stops are dropped so consumers cannot mistake them for a drivable
// route.
func markInfeasible(plan *domain.RoutePlan, msg string) {
	plan.Segments = []domain.Segment{}
	plan.ChargingStops = []domain.ChargingStop{}
	plan.Breaks = []domain.DriverBreak{}
	plan.TotalDistanceKm = 0
	plan.DrivingMin = 0
	plan.JourneyMin = 0
	plan.Costs = domain.CostBreakdown{}
	plan.Feasible = false
	plan.Message = msg
}

// Fold one hop's results into the plan.
func applyOutcome(plan *domain.RoutePlan, out hopOutcome) {
	plan.Segments = append(plan.Segments, out.segments...)
	plan.Breaks = append(plan.Breaks, out.breaks...)
	if out.stop != nil {
		plan.ChargingStops = append(plan.ChargingStops, *out.stop)
	}
	plan.TotalDistanceKm += out.distanceKm
	plan.DrivingMin += out.driveMin
}

// Seal the totals once the truck has arrived.
func finishPlan(cfg PlanningConfig, plan *domain.RoutePlan, st *hopState) {
	chargingEUR := 0.0
	for _, s := range plan.ChargingStops {
		chargingEUR += s.CostEUR
	}

	plan.Costs = routeCosts(cfg, plan.TotalDistanceKm, plan.DrivingMin, chargingEUR)
	plan.JourneyMin = st.clockMin
	plan.FinalChargeKWh = st.chargeKWh
	plan.Feasible = true
	plan.Message = fmt.Sprintf(
		"%.1f km in %d segments, %d charging stops, %d breaks, %.2f EUR",
		plan.TotalDistanceKm, len(plan.Segments), len(plan.ChargingStops), len(plan.Breaks),
		plan.Costs.TotalEUR,
	)

	if plan.Driver != nil {
		plan.Driver.Current = st.pos
		plan.Driver.ContinuousMin = st.tracker.continuousMin
		plan.Driver.DailyMin = st.tracker.dailyMin
		plan.Driver.BreakMin = breakMinutes(plan.Breaks)
	}
}

func breakMinutes(breaks []domain.DriverBreak) float64 {
	total := 0.0
	for _, b := range breaks {
		total += b.DurationMin
	}
	return total
}

// Dead ends are reported as infeasible plans rather than errors.
func isPlanningDeadEnd(err error) bool {
	return errors.Is(err, domain.ErrNoSuitableStation) ||
		errors.Is(err, domain.ErrHopLimitExceeded) ||
		errors.Is(err, domain.ErrNoPathFound)
}
