package dto

type TruckResponse struct {
	Manufacturer       string  `json:"manufacturer"`
	Model              string  `json:"model"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	ConsumptionKWhKm   float64 `json:"consumption_kwh_per_km"`
	RangeKm            float64 `json:"range_km"`
}

type ListTrucksResponse struct {
	Trucks []TruckResponse `json:"trucks"`
}

type StationResponse struct {
	StationID     int     `json:"station_id"`
	Country       string  `json:"country"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	TruckSuitable bool    `json:"truck_suitable"`
	OperatorName  string  `json:"operator_name"`
	MaxPowerKW    float64 `json:"max_power_kw"`
	PricePerKWh   float64 `json:"price_per_kwh"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
