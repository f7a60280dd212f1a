// Package geo provides great-circle distance helpers for the attraction map.
package geo

import (
	"math"
	"sort"

	"github.com/rioguia/rioguia-api/internal/catalog"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// WGS84 points. Symmetric, and zero (within floating-point epsilon) for
// identical points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Result pairs an attraction with its distance from a query point.
type Result struct {
	Attraction catalog.Attraction `json:"attraction"`
	DistanceKm float64            `json:"distanceKm"`
}

// Nearby returns the attractions within radiusKm of the given point, sorted
// by ascending distance. Ties keep catalog order (stable sort).
func Nearby(lat, lng, radiusKm float64, list []catalog.Attraction) []Result {
	var out []Result
	for _, a := range list {
		d := HaversineKm(lat, lng, a.Coordinates.Latitude, a.Coordinates.Longitude)
		if d <= radiusKm {
			out = append(out, Result{Attraction: a, DistanceKm: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out
}
