package services

import (
	"math"
	"sort"

	"etruck-route-service/internal/domain"
)

const (
	swapReasonSameStation = "same_station"
	swapReasonRendezvous  = "rendezvous"
)

type swapCandidate struct {
	i, j     int
	station  domain.ChargingStation
	dot      float64
	detourKm float64
	reason   string
}

// Look for one worthwhile truck swap among the still-moving routes. A pair
// qualifies when the two trucks head in opposing directions; the swap point
// is either the station both just charged at, or the cheapest shared
// rendezvous station within reach of both. Pairs that already swapped are
// skipped so drivers cannot ping-pong between the same two routes. At most
// one candidate is returned per round, the one with the strongest
// opposition and then the smallest detour.
func detectSwap(
	cfg PlanningConfig,
	cursors []*routeCursor,
	stations []domain.ChargingStation,
	swappedPairs map[[2]int]bool,
) (swapCandidate, bool) {
	var candidates []swapCandidate

	for i := 0; i < len(cursors); i++ {
		for j := i + 1; j < len(cursors); j++ {
			a, b := cursors[i], cursors[j]
			if !a.moving() || !b.moving() || swappedPairs[[2]int{i, j}] {
				continue
			}

			ay, ax := a.st.pos.UnitVectorTo(a.st.dest)
			by, bx := b.st.pos.UnitVectorTo(b.st.dest)
			if (ay == 0 && ax == 0) || (by == 0 && bx == 0) {
				continue
			}
			dot := ay*by + ax*bx
			if dot >= cfg.InverseAlignmentThreshold {
				continue
			}

			if c, ok := sameStationCandidate(i, j, a, b, stations, dot); ok {
				candidates = append(candidates, c)
				continue
			}
			if c, ok := rendezvousCandidate(cfg, i, j, a, b, stations, dot); ok {
				candidates = append(candidates, c)
			}
		}
	}

	if len(candidates) == 0 {
		return swapCandidate{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dot != candidates[j].dot {
			return candidates[i].dot < candidates[j].dot
		}
		return candidates[i].detourKm < candidates[j].detourKm
	})
	return candidates[0], true
}

// Both trucks charged at the same station this round: a free swap.
func sameStationCandidate(
	i, j int,
	a, b *routeCursor,
	stations []domain.ChargingStation,
	dot float64,
) (swapCandidate, bool) {
	if a.lastStationID == 0 || a.lastStationID != b.lastStationID {
		return swapCandidate{}, false
	}
	for _, s := range stations {
		if s.StationID == a.lastStationID {
			return swapCandidate{
				i: i, j: j,
				station: s,
				dot:     dot,
				reason:  swapReasonSameStation,
			}, true
		}
	}
	return swapCandidate{}, false
}

// Cheapest truck-suitable station reachable from both trucks within the
// rendezvous radius, detour being the sum of both approach legs.
func rendezvousCandidate(
	cfg PlanningConfig,
	i, j int,
	a, b *routeCursor,
	stations []domain.ChargingStation,
	dot float64,
) (swapCandidate, bool) {
	best := swapCandidate{detourKm: math.MaxFloat64}
	found := false

	for _, s := range stations {
		if !s.TruckSuitable {
			continue
		}
		d1 := a.st.pos.ApproxDistanceKm(s.Location)
		d2 := b.st.pos.ApproxDistanceKm(s.Location)
		if d1 > cfg.RendezvousRadiusKm || d2 > cfg.RendezvousRadiusKm {
			continue
		}
		if detour := d1 + d2; detour < best.detourKm {
			best = swapCandidate{
				i: i, j: j,
				station:  s,
				dot:      dot,
				detourKm: detour,
				reason:   swapReasonRendezvous,
			}
			found = true
		}
	}
	return best, found
}
