package domain

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Key returns a stable string form suitable for cache keys.
// Five decimals keep ~1m precision, enough to dedupe provider calls.
func (c Coordinates) Key() string {
	return fmt.Sprintf("%.5f,%.5f", c.Lat, c.Lon)
}

// DistanceKm returns the great-circle (haversine) distance to other in kilometers.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ApproxDistanceKm returns an equirectangular distance approximation.
// Cheap enough to rank hundreds of stations; exact distances are recomputed
// via the routing provider where cost matters.
func (c Coordinates) ApproxDistanceKm(other Coordinates) float64 {
	midLat := (c.Lat + other.Lat) / 2 * math.Pi / 180
	dLat := (other.Lat - c.Lat) * 111.0
	dLon := (other.Lon - c.Lon) * 111.0 * math.Cos(midLat)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// UnitVectorTo returns the normalized planar direction from c toward target,
// or (0,0) when the points coincide.
func (c Coordinates) UnitVectorTo(target Coordinates) (float64, float64) {
	midLat := (c.Lat + target.Lat) / 2 * math.Pi / 180
	dy := target.Lat - c.Lat
	dx := (target.Lon - c.Lon) * math.Cos(midLat)

	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return 0, 0
	}
	return dy / length, dx / length
}

// Interpolate returns the point a fraction t of the way from c to other.
func (c Coordinates) Interpolate(other Coordinates, t float64) Coordinates {
	return Coordinates{
		Lat: c.Lat + (other.Lat-c.Lat)*t,
		Lon: c.Lon + (other.Lon-c.Lon)*t,
	}
}
