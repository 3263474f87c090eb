package routing

import (
	"context"
	"fmt"
	"math"
	"sync"

	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   int
	Seconds  int
}

// MockRouteProvider serves canned legs. Legs registered up front take
// precedence; with Synthesize set, unregistered pairs are answered with a
// straight line at the configured speed instead of an error. Safe for
// concurrent use.
type MockRouteProvider struct {
	mu         sync.Mutex
	legs       map[string]ports.RouteResult
	calls      int
	Synthesize bool
	SpeedKmh   float64
}

func NewMockRouteProvider(legs []MockLeg) *MockRouteProvider {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[l.From.Key()+"|"+l.To.Key()] = ports.RouteResult{
			DistanceMeters:  l.Meters,
			DurationSeconds: l.Seconds,
			Polyline:        straightLine(l.From, l.To),
		}
	}
	return &MockRouteProvider{legs: m, SpeedKmh: 70}
}

func (p *MockRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if r, ok := p.legs[origin.Key()+"|"+destination.Key()]; ok {
		return r, nil
	}
	if !p.Synthesize {
		return ports.RouteResult{}, fmt.Errorf("missing leg %s -> %s", origin.Key(), destination.Key())
	}

	distKm := origin.DistanceKm(destination)
	return ports.RouteResult{
		DistanceMeters:  int(math.Round(distKm * 1000)),
		DurationSeconds: int(math.Round(distKm / p.SpeedKmh * 3600)),
		Polyline:        straightLine(origin, destination),
	}, nil
}

// Calls reports how many times GetRoute was invoked.
func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// A dense enough polyline that walking it by distance stays accurate.
func straightLine(from, to domain.Coordinates) []domain.Coordinates {
	const steps = 100
	line := make([]domain.Coordinates, 0, steps+1)
	for i := 0; i <= steps; i++ {
		line = append(line, from.Interpolate(to, float64(i)/steps))
	}
	return line
}
