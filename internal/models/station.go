package models

// Station is a subway station candidate returned by the places index.
type Station struct {
	Name     string      // Name is the display name reported by the provider.
	Location Coordinates // Location is the station position.
	PlaceID  string      // PlaceID is the opaque provider identifier used for details lookups.
}

// Exit is a named sub-component of a station that looks like an exit.
type Exit struct {
	Label string
}

// DirectionStep is one step of a walking route.
// Instruction keeps the provider markup and Distance stays provider-formatted (e.g. "120 m").
type DirectionStep struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
}

// NearestStation is the combined result of a nearest station lookup.
type NearestStation struct {
	Station    Station
	Input      Coordinates
	Exit       *string // Exit is nil when exit lookup was not attempted.
	Directions []DirectionStep
}
