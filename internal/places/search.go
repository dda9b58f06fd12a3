package places

import (
	"context"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"googlemaps.github.io/maps"
)

// SearchRadiusMeters and SearchType are applied to every nearby search.
const (
	SearchRadiusMeters = 1000
	SearchType         = maps.PlaceTypeSubwayStation
)

// RankSelection picks the nearest station out of the provider's ranked results.
type RankSelection func(results []maps.PlacesSearchResult) (maps.PlacesSearchResult, bool)

// RankFirst trusts the provider ranking and takes the first result as is.
var RankFirst RankSelection = func(results []maps.PlacesSearchResult) (maps.PlacesSearchResult, bool) {
	if len(results) == 0 {
		return maps.PlacesSearchResult{}, false
	}

	return results[0], true
}

// NearestStation queries the places index around origin and returns the top ranked subway station.
// It returns ErrNotFound when the provider answers with zero results or a non-success status.
func (gp *GoogleProvider) NearestStation(ctx context.Context, origin models.Coordinates) (*models.Station, error) {
	gp.log.DebugContext(ctx, "Searching nearby stations", "lat", origin.Latitude, "lng", origin.Longitude)

	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: origin.Latitude, Lng: origin.Longitude},
		Radius:   SearchRadiusMeters,
		Type:     SearchType,
	}

	resp, err := gp.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, classify(ErrNotFound, err)
	}

	top, ok := gp.selection(resp.Results)
	if !ok {
		return nil, ErrNotFound
	}

	gp.log.DebugContext(ctx, "Nearest station resolved",
		"name", top.Name, "place_id", top.PlaceID, "candidates", len(resp.Results))

	return &models.Station{
		Name:     top.Name,
		Location: models.Coordinates{Latitude: top.Geometry.Location.Lat, Longitude: top.Geometry.Location.Lng},
		PlaceID:  top.PlaceID,
	}, nil
}
