package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"googlemaps.github.io/maps"
)

// DefaultRegion is the ccTLD used to bias and restrict geocoding results.
const DefaultRegion = "hk"

// GoogleAPIClient is the subset of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when no result inside the region matches the address.
var ErrEmptyResponse = errors.New("get empty response from Google Maps API")

// GoogleProvider geocodes addresses with the Google Maps Geocoding API,
// restricted to a single country.
type GoogleProvider struct {
	client GoogleAPIClient
	region string
	log    *slog.Logger
}

// NewGoogleProvider wraps a Google Maps client. An empty region means DefaultRegion.
func NewGoogleProvider(client GoogleAPIClient, region string, log *slog.Logger) *GoogleProvider {
	if region == "" {
		region = DefaultRegion
	}

	return &GoogleProvider{client: client, region: region, log: log}
}

// Geocode resolves address to the location of the best ranked result in the region.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	results, err := gp.client.Geocode(ctx, gp.request(address))
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}

	best := results[0]
	gp.log.DebugContext(ctx, "Address geocoded by Google Maps",
		"address", address,
		"formatted", best.FormattedAddress,
		"partial_match", best.PartialMatch,
		"results", len(results),
	)

	return &models.Coordinates{
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
	}, nil
}

func (gp *GoogleProvider) request(address string) *maps.GeocodingRequest {
	return &maps.GeocodingRequest{
		Address:    address,
		Region:     gp.region,
		Components: map[maps.Component]string{maps.ComponentCountry: gp.region},
	}
}
