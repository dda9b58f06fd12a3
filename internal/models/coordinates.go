package models

import "strconv"

// Coordinates represents a geographical point defined by its longitude and latitude.
type Coordinates struct {
	Longitude float64 // Longitude of the geographical point.
	Latitude  float64 // Latitude of the geographical point.
}

// String renders the point as "lat,lng", the form expected by the Google Maps web services.
// Values keep their full precision.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
