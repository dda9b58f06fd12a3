package places_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/UnknownOlympus/mtr-locator/internal/places"
	"github.com/UnknownOlympus/mtr-locator/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func detailsRequest(placeID string) *maps.PlaceDetailsRequest {
	return &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskAddressComponent,
		},
	}
}

func components(names ...string) maps.PlaceDetailsResult {
	result := maps.PlaceDetailsResult{}
	for _, name := range names {
		result.AddressComponents = append(result.AddressComponents, maps.AddressComponent{LongName: name})
	}
	return result
}

func TestSelectExit(t *testing.T) {
	mockClient := mocks.NewMapsClient(t)
	provider := places.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()
	origin := models.Coordinates{Latitude: 22.2830, Longitude: 114.1585}
	station := models.Station{
		Name:     "Central Station",
		PlaceID:  "abc123",
		Location: models.Coordinates{Latitude: 22.2825, Longitude: 114.1580},
	}

	t.Run("details lookup fails", func(t *testing.T) {
		mockClient.On("PlaceDetails", ctx, detailsRequest("abc123")).
			Return(maps.PlaceDetailsResult{}, assert.AnError).Once()

		label, err := provider.SelectExit(ctx, station, origin)

		assert.Empty(t, label)
		require.ErrorIs(t, err, places.ErrDetails)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("no component looks like an exit", func(t *testing.T) {
		mockClient.On("PlaceDetails", ctx, detailsRequest("abc123")).
			Return(components("Gate 3", "Des Voeux Road Central", "Hong Kong"), nil).Once()

		label, err := provider.SelectExit(ctx, station, origin)

		assert.Empty(t, label)
		require.ErrorIs(t, err, places.ErrNoExit)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		mockClient.On("PlaceDetails", ctx, detailsRequest("abc123")).
			Return(components("Gate 3", "EXIT K"), nil).Once()

		label, err := provider.SelectExit(ctx, station, origin)

		require.NoError(t, err)
		assert.Equal(t, "EXIT K", label)
	})

	t.Run("several exits keep provider order", func(t *testing.T) {
		mockClient.On("PlaceDetails", ctx, detailsRequest("abc123")).
			Return(components("Exit D2", "Gate 3", "Exit A", "exit C"), nil).Times(3)

		for range 3 {
			label, err := provider.SelectExit(ctx, station, origin)

			require.NoError(t, err)
			assert.Equal(t, "Exit D2", label)
		}
	})
}

func TestExits(t *testing.T) {
	mockClient := mocks.NewMapsClient(t)
	provider := places.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	mockClient.On("PlaceDetails", ctx, detailsRequest("xyz")).
		Return(components("Exit A", "Gate 3", "Exit B"), nil).Once()

	exits, err := provider.Exits(ctx, "xyz")

	require.NoError(t, err)
	assert.Equal(t, []models.Exit{{Label: "Exit A"}, {Label: "Exit B"}}, exits)
}
