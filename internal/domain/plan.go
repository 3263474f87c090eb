package domain

// RouteRequest asks for a plan from Start to End with a given truck model.
type RouteRequest struct {
	RouteName         string
	Start             Coordinates
	End               Coordinates
	TruckModel        string
	StartingChargeKWh float64 // 0 means "full battery"
}

// Segment is one drive leg of a plan. Immutable once created.
type Segment struct {
	Start       Coordinates
	End         Coordinates
	DistanceKm  float64
	DurationMin float64
	EnergyKWh   float64
	DriverID    string
}

// ChargingStop records charging at a station between two segments.
// Immutable once created.
type ChargingStop struct {
	Station            ChargingStation
	ArrivalChargeKWh   float64
	DepartureChargeKWh float64
	ChargingMin        float64
	CostEUR            float64
}

type BreakKind string

const (
	ShortBreak BreakKind = "short_break" // 45 minute break
	LongRest   BreakKind = "long_rest"   // 11 hour rest
)

// DriverBreak is a mandatory pause inserted by the compliance scheduler.
// Immutable once created.
type DriverBreak struct {
	Kind           BreakKind
	Location       Coordinates
	StartOffsetMin float64 // minutes from journey start
	DurationMin    float64
	Reason         string
}

// CostBreakdown is the plan's cost contract. Energy cost is folded into
// charging cost; there is no separate energy line item.
type CostBreakdown struct {
	DriverEUR       float64
	DepreciationEUR float64
	TollsEUR        float64
	ChargingEUR     float64
	TotalEUR        float64
}

// TruckSwap is the immutable record of two drivers exchanging trucks,
// created only when the swap detector accepts a candidate.
type TruckSwap struct {
	StationID    int
	Location     Coordinates
	Driver1ID    string
	Driver2ID    string
	AlignmentDot float64
	DetourKm     float64
	Round        int
	Reason       string // "same_station" or "rendezvous"
}

// RoutePlan is the completed output for one route. Built incrementally by the
// planner, never mutated after completion. Segments, stops and breaks are
// ordered by increasing journey time; the sum of segment distances equals
// TotalDistanceKm.
type RoutePlan struct {
	RouteName         string
	TruckModel        string
	Driver            *Driver
	Segments          []Segment
	ChargingStops     []ChargingStop
	Breaks            []DriverBreak
	Swaps             []TruckSwap
	Costs             CostBreakdown
	TotalDistanceKm   float64
	DrivingMin        float64 // wheel-turning time only
	JourneyMin        float64 // including charging and breaks
	StartingChargeKWh float64
	FinalChargeKWh    float64
	Feasible          bool
	Message           string
}

// HopRecord is one route's advance during one coordinator round.
type HopRecord struct {
	Round       int
	RouteIndex  int
	Start       Coordinates
	End         Coordinates
	DistanceKm  float64
	DurationMin float64
	CostEUR     float64
}

// FleetPlan is the multi-route result: per-route plans plus the swap history
// and round-by-round hop records.
type FleetPlan struct {
	Routes          []*RoutePlan
	Drivers         []*Driver
	Swaps           []TruckSwap
	Iterations      []HopRecord
	Rounds          int
	TotalDistanceKm float64
	TotalCostEUR    float64
	Message         string
}
