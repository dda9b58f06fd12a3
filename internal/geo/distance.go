// Package geo holds great-circle helpers.
package geo

import (
	"math"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

const metersPerKm = 1000

// Distance returns the haversine great-circle distance between a and b in meters.
// Inputs are degrees.
func Distance(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * metersPerKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
