package places

import (
	"context"
	"math"
	"strings"

	"github.com/UnknownOlympus/mtr-locator/internal/geo"
	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"googlemaps.github.io/maps"
)

const exitToken = "exit"

// Exits fetches the place details of a station and returns the components named like an exit,
// in provider order.
func (gp *GoogleProvider) Exits(ctx context.Context, placeID string) ([]models.Exit, error) {
	req := &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskAddressComponent,
		},
	}

	details, err := gp.client.PlaceDetails(ctx, req)
	if err != nil {
		return nil, classify(ErrDetails, err)
	}

	return filterExits(details.AddressComponents), nil
}

func filterExits(components []maps.AddressComponent) []models.Exit {
	var exits []models.Exit
	for _, comp := range components {
		if strings.Contains(strings.ToLower(comp.LongName), exitToken) {
			exits = append(exits, models.Exit{Label: comp.LongName})
		}
	}

	return exits
}

// SelectExit picks the exit of station closest to origin.
//
// Details carry no per-exit coordinates, so every candidate is ranked by the
// origin-to-station distance. The ranking is therefore constant and the first
// exit in provider order always wins.
func (gp *GoogleProvider) SelectExit(
	ctx context.Context,
	station models.Station,
	origin models.Coordinates,
) (string, error) {
	exits, err := gp.Exits(ctx, station.PlaceID)
	if err != nil {
		return "", err
	}

	label, ok := nearestExit(exits, station, origin)
	if !ok {
		return "", ErrNoExit
	}

	gp.log.DebugContext(ctx, "Exit selected", "station", station.Name, "exit", label, "candidates", len(exits))

	return label, nil
}

func nearestExit(exits []models.Exit, station models.Station, origin models.Coordinates) (string, bool) {
	best := ""
	bestDistance := math.Inf(1)
	for _, exit := range exits {
		d := geo.Distance(origin, station.Location)
		if d < bestDistance {
			best, bestDistance = exit.Label, d
		}
	}

	return best, len(exits) > 0
}
