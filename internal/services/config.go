package services

// Tunables for route segmentation, compliance scheduling and fleet
// coordination. Zero values are not usable; start from DefaultPlanningConfig
// and override individual fields.
type PlanningConfig struct {
	// Battery management.
	SafetyMargin    float64 // fraction of capacity usable on a direct run
	ReserveFraction float64 // charge floor a segment may not dip below
	ChargeTarget    float64 // fraction of capacity restored at a charging stop

	// Segment time bounding.
	AvgSpeedKmh         float64 // assumed cruise speed for time-to-distance conversion
	SegmentTargetMin    float64 // preferred continuous driving stretch per segment
	SegmentToleranceMin float64 // slack subtracted from the target when capping range
	MaxDirectDriveMin   float64 // longest leg allowed without any charging stop
	MaxHops             int     // staged-planning segment limit before giving up
	StationRadiusKm     float64 // candidate search radius around the segment endpoint
	StationCandidates   int     // closest stations kept for scoring
	ChargingFallbackEUR float64 // per-kWh price when a station publishes none
	StationScoreCostW   float64 // weight of price in station scoring
	StationScorePowerW  float64 // weight of inverse power in station scoring

	// Driver-hours compliance.
	ContinuousLimitMin float64 // driving allowed before a short break is due
	ShortBreakMin      float64 // duration of a short break
	DailyLimitMin      float64 // driving allowed before a long rest is due
	LongRestMin        float64 // duration of a long rest

	// Cost model.
	DriverWagePerHour float64
	DepreciationPerKm float64
	TollsPerKm        float64

	// Fleet coordination.
	InverseAlignmentThreshold float64 // dot product below which two routes oppose
	RendezvousRadiusKm        float64 // max detour leg to a shared swap station
	MaxRounds                 int     // coordination rounds before aborting
}

// Defaults tuned for long-haul electric trucks on EU driving-time rules.
func DefaultPlanningConfig() PlanningConfig {
	return PlanningConfig{
		SafetyMargin:    0.8,
		ReserveFraction: 0.2,
		ChargeTarget:    0.8,

		AvgSpeedKmh:         70,
		SegmentTargetMin:    240,
		SegmentToleranceMin: 10,
		MaxDirectDriveMin:   270,
		MaxHops:             10,
		StationRadiusKm:     50,
		StationCandidates:   5,
		ChargingFallbackEUR: 0.60,
		StationScoreCostW:   0.7,
		StationScorePowerW:  0.3,

		ContinuousLimitMin: 270,
		ShortBreakMin:      45,
		DailyLimitMin:      540,
		LongRestMin:        660,

		DriverWagePerHour: 35,
		DepreciationPerKm: 0.05,
		TollsPerKm:        0,

		InverseAlignmentThreshold: -0.5,
		RendezvousRadiusKm:        60,
		MaxRounds:                 20,
	}
}
