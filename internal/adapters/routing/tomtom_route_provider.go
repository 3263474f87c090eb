package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"etruck-route-service/internal/domain"
	"etruck-route-service/internal/platform/obs"
	"etruck-route-service/internal/ports"
)

// TomTomRouteProvider implements RouteProvider using the TomTom Routing
// API's calculateRoute endpoint with a truck travel profile.
//
// It coordinates:
//   - Persistent route caching (optional)
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type TomTomRouteProvider struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	maxSpeedKmh int
	cache       ports.RouteCache
}

func NewTomTomRouteProvider(apiKey string, cache ports.RouteCache) (*TomTomRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("TomTom api key is empty")
	}

	return &TomTomRouteProvider{
		session:     &http.Client{Timeout: 15 * time.Second},
		apiKey:      apiKey,
		baseURL:     "https://api.tomtom.com",
		maxSpeedKmh: 90,
		cache:       cache,
	}, nil
}

type tomtomPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type tomtomResponse struct {
	Routes []struct {
		Summary struct {
			LengthInMeters      int `json:"lengthInMeters"`
			TravelTimeInSeconds int `json:"travelTimeInSeconds"`
		} `json:"summary"`
		Legs []struct {
			Points []tomtomPoint `json:"points"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute returns the routed distance, duration and path between origin
// and destination, consulting the cache before calling out.
func (t *TomTomRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "tomtom.GetRoute")(&err)

	if t.cache != nil {
		res, ok, cErr := t.cache.Get(ctx, origin, destination)
		if cErr != nil {
			return ports.RouteResult{}, fmt.Errorf("tomtom get route cache: %w", cErr)
		}
		if ok {
			return res, nil
		}
	}

	res, err := t.fetchRoute(ctx, origin, destination)
	if err != nil {
		return ports.RouteResult{}, err
	}

	if t.cache != nil {
		if cErr := t.cache.Put(ctx, origin, destination, res); cErr != nil {
			// A cache write failure only costs a future API call.
			log.Printf("level=warn msg=\"route cache put failed\" err=%q", cErr)
		}
	}

	return res, nil
}

func (t *TomTomRouteProvider) fetchRoute(
	ctx context.Context,
	origin, destination domain.Coordinates,
) (ports.RouteResult, error) {
	locations := fmt.Sprintf("%f,%f:%f,%f", origin.Lat, origin.Lon, destination.Lat, destination.Lon)
	endpoint := fmt.Sprintf("%s/routing/1/calculateRoute/%s/json", t.baseURL, locations)

	resp, err := t.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := req.URL.Query()
		q.Set("key", t.apiKey)
		q.Set("travelMode", "truck")
		q.Set("routeType", "fastest")
		q.Set("vehicleMaxSpeed", fmt.Sprintf("%d", t.maxSpeedKmh))
		req.URL.RawQuery = q.Encode()
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == 400 {
			// TomTom answers 400 when no truck route exists between the points.
			return ports.RouteResult{}, fmt.Errorf("tomtom calculate route: %s: %w", he.Body, domain.ErrNoPathFound)
		}
		return ports.RouteResult{}, fmt.Errorf("tomtom calculate route: %v: %w", err, domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	var parsed tomtomResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return ports.RouteResult{}, fmt.Errorf("tomtom decode response: %w", err)
	}

	if len(parsed.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("tomtom returned no routes: %w", domain.ErrNoPathFound)
	}

	route := parsed.Routes[0]
	polyline := make([]domain.Coordinates, 0)
	if len(route.Legs) > 0 {
		for _, pt := range route.Legs[0].Points {
			polyline = append(polyline, domain.Coordinates{Lat: pt.Latitude, Lon: pt.Longitude})
		}
	}
	if len(polyline) == 0 {
		polyline = []domain.Coordinates{origin, destination}
	}

	return ports.RouteResult{
		DistanceMeters:  route.Summary.LengthInMeters,
		DurationSeconds: route.Summary.TravelTimeInSeconds,
		Polyline:        polyline,
	}, nil
}
