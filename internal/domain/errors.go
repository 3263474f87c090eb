package domain

import "errors"

// Planning failure taxonomy. Hop-level and provider-level failures are
// recovered at the route level (Feasible=false with a diagnostic message)
// and never abort sibling routes.
var (
	// ErrProviderUnavailable: the routing provider could not be reached
	// within the retry budget.
	ErrProviderUnavailable = errors.New("routing provider unavailable")

	// ErrNoPathFound: the provider returned no route for a coordinate pair.
	// Not retried.
	ErrNoPathFound = errors.New("no route found between points")

	// ErrNoSuitableStation: no truck-suitable charging station within range.
	ErrNoSuitableStation = errors.New("no suitable charging station")

	// ErrHopLimitExceeded: the staged loop tripped its safety bound,
	// signalling a planning defect or pathological input.
	ErrHopLimitExceeded = errors.New("hop safety limit exceeded")

	// ErrUnknownTruckModel: request validation failure, checked before any
	// planning work begins.
	ErrUnknownTruckModel = errors.New("unknown truck model")
)
