// Package scoring holds the pure scoring primitives shared by the ranking
// and trending engines: great-circle distance, text relevance and recency
// decay. Nothing in here touches storage or external services.
package scoring

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees. Symmetric, and zero for identical points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ProximityFactor converts a distance into a [0, 1] factor that decays
// linearly to zero at cutoffKm. Used by the trending engine to weight
// event locations against the caller's position.
func ProximityFactor(distanceKm, cutoffKm float64) float64 {
	return math.Max(0, 1-math.Min(distanceKm/cutoffKm, 1))
}
