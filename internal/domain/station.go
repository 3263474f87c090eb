package domain

// ChargingStation is one entry of the public charge-point directory.
// Identity is StationID; records are immutable and loaded once.
type ChargingStation struct {
	StationID     int
	Country       string
	Location      Coordinates
	TruckSuitable bool
	OperatorName  string
	MaxPowerKW    float64
	PricePerKWh   float64 // EUR; 0 means unknown, callers apply a fallback price
}
