package domain

// TruckProfile describes an electric truck model's battery and consumption
// characteristics. Profiles are immutable and loaded once at startup.
type TruckProfile struct {
	Manufacturer    string
	Model           string
	BatteryCapacity float64 // kWh
	Consumption     float64 // kWh/km
	RangeKm         float64 // nominal range at full battery
}

// EnergyForDistance returns the energy in kWh needed to drive distanceKm.
func (t TruckProfile) EnergyForDistance(distanceKm float64) float64 {
	return distanceKm * t.Consumption
}
