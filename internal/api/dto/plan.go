package dto

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type PlanRouteRequest struct {
	RouteName         string      `json:"route_name"`
	Start             Coordinates `json:"start"`
	End               Coordinates `json:"end"`
	TruckModel        string      `json:"truck_model"`
	StartingChargeKWh float64     `json:"starting_charge_kwh"`
}

type PlanFleetRequest struct {
	Routes []PlanRouteRequest `json:"routes"`
}

type SegmentResponse struct {
	Start       Coordinates `json:"start"`
	End         Coordinates `json:"end"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	EnergyKWh   float64     `json:"energy_kwh"`
	DriverID    string      `json:"driver_id"`
}

type ChargingStopResponse struct {
	StationID          int     `json:"station_id"`
	OperatorName       string  `json:"operator_name"`
	Lat                float64 `json:"lat"`
	Lon                float64 `json:"lon"`
	ArrivalChargeKWh   float64 `json:"arrival_charge_kwh"`
	DepartureChargeKWh float64 `json:"departure_charge_kwh"`
	ChargingMin        float64 `json:"charging_min"`
	CostEUR            float64 `json:"cost_eur"`
}

type BreakResponse struct {
	Kind           string      `json:"kind"`
	Location       Coordinates `json:"location"`
	StartOffsetMin float64     `json:"start_offset_min"`
	DurationMin    float64     `json:"duration_min"`
	Reason         string      `json:"reason"`
}

type SwapResponse struct {
	StationID    int         `json:"station_id"`
	Location     Coordinates `json:"location"`
	Driver1ID    string      `json:"driver1_id"`
	Driver2ID    string      `json:"driver2_id"`
	AlignmentDot float64     `json:"alignment_dot"`
	DetourKm     float64     `json:"detour_km"`
	Round        int         `json:"round"`
	Reason       string      `json:"reason"`
}

type CostsResponse struct {
	DriverEUR       float64 `json:"driver_eur"`
	DepreciationEUR float64 `json:"depreciation_eur"`
	TollsEUR        float64 `json:"tolls_eur"`
	ChargingEUR     float64 `json:"charging_eur"`
	TotalEUR        float64 `json:"total_eur"`
}

type DriverResponse struct {
	DriverID      string      `json:"driver_id"`
	Current       Coordinates `json:"current"`
	Home          Coordinates `json:"home"`
	DailyMin      float64     `json:"daily_min"`
	ContinuousMin float64     `json:"continuous_min"`
	BreakMin      float64     `json:"break_min"`
	AssignedRoute int         `json:"assigned_route"`
}

type RoutePlanResponse struct {
	RouteName         string                 `json:"route_name"`
	TruckModel        string                 `json:"truck_model"`
	Driver            *DriverResponse        `json:"driver,omitempty"`
	Segments          []SegmentResponse      `json:"segments"`
	ChargingStops     []ChargingStopResponse `json:"charging_stops"`
	Breaks            []BreakResponse        `json:"breaks"`
	Swaps             []SwapResponse         `json:"swaps"`
	Costs             CostsResponse          `json:"costs"`
	TotalDistanceKm   float64                `json:"total_distance_km"`
	DrivingMin        float64                `json:"driving_min"`
	JourneyMin        float64                `json:"journey_min"`
	StartingChargeKWh float64                `json:"starting_charge_kwh"`
	FinalChargeKWh    float64                `json:"final_charge_kwh"`
	Feasible          bool                   `json:"feasible"`
	Message           string                 `json:"message"`
}

type HopRecordResponse struct {
	Round       int         `json:"round"`
	RouteIndex  int         `json:"route_index"`
	Start       Coordinates `json:"start"`
	End         Coordinates `json:"end"`
	DistanceKm  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	CostEUR     float64     `json:"cost_eur"`
}

type FleetPlanResponse struct {
	Routes          []RoutePlanResponse `json:"routes"`
	Drivers         []DriverResponse    `json:"drivers"`
	Swaps           []SwapResponse      `json:"swaps"`
	Iterations      []HopRecordResponse `json:"iterations"`
	Rounds          int                 `json:"rounds"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	TotalCostEUR    float64             `json:"total_cost_eur"`
	Message         string              `json:"message"`
}
