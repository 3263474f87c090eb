package services

import (
	"etruck-route-service/internal/domain"
)

// Last stop the truck made, used to overlap mandated rest with time the
// truck is charging anyway.
type stopInfo struct {
	location    domain.Coordinates
	chargingMin float64
}

// Accumulates driving time against the continuous and daily limits.
// The tracker emits the breaks a driver must take before a segment and
// resets the relevant counters when they do.
type complianceTracker struct {
	cfg           PlanningConfig
	continuousMin float64
	dailyMin      float64
}

func newComplianceTracker(cfg PlanningConfig) complianceTracker {
	return complianceTracker{cfg: cfg}
}

// Breaks that must be taken before driving driveMin more minutes, together
// with the wall-clock minutes they add. Breaks at the site of the last
// charging stop run concurrently with charging: only time beyond the
// charging duration extends the clock.
func (t *complianceTracker) breaksBefore(
	driveMin float64,
	at domain.Coordinates,
	clockMin float64,
	lastStop *stopInfo,
) ([]domain.DriverBreak, float64) {
	var breaks []domain.DriverBreak
	added := 0.0

	overlapMin := 0.0
	if lastStop != nil && lastStop.location == at {
		overlapMin = lastStop.chargingMin
	}

	take := func(kind domain.BreakKind, durationMin float64, reason string) {
		breaks = append(breaks, domain.DriverBreak{
			Kind:           kind,
			Location:       at,
			StartOffsetMin: clockMin + added,
			DurationMin:    durationMin,
			Reason:         reason,
		})
		extra := durationMin - overlapMin
		if extra < 0 {
			extra = 0
		}
		overlapMin -= durationMin
		if overlapMin < 0 {
			overlapMin = 0
		}
		added += extra
	}

	if t.continuousMin+driveMin > t.cfg.ContinuousLimitMin {
		take(domain.ShortBreak, t.cfg.ShortBreakMin, "continuous driving limit reached")
		t.continuousMin = 0
	}
	if t.dailyMin+driveMin > t.cfg.DailyLimitMin {
		take(domain.LongRest, t.cfg.LongRestMin, "daily driving limit reached")
		t.continuousMin = 0
		t.dailyMin = 0
	}

	return breaks, added
}

// Account for driveMin minutes actually driven.
func (t *complianceTracker) record(driveMin float64) {
	t.continuousMin += driveMin
	t.dailyMin += driveMin
}
