package domain

import "github.com/google/uuid"

// Driver carries the mutable regulatory state of one driver.
// During a fleet run the coordinator is the sole owner; per-hop computations
// work on copies and results are merged back at the round barrier.
type Driver struct {
	DriverID      string
	Current       Coordinates
	Home          Coordinates
	DailyMin      float64 // minutes driven since the last long rest
	ContinuousMin float64 // minutes driven since the last break of any kind
	BreakMin      float64 // cumulative minutes spent on breaks and rests
	AssignedRoute int     // index of the route/truck this driver currently pilots
}

// NewDriver returns a fresh driver homed at start with zeroed accumulators.
func NewDriver(start Coordinates, routeIdx int) *Driver {
	return &Driver{
		DriverID:      uuid.NewString(),
		Current:       start,
		Home:          start,
		AssignedRoute: routeIdx,
	}
}
