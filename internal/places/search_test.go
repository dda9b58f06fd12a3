package places_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/UnknownOlympus/mtr-locator/internal/places"
	"github.com/UnknownOlympus/mtr-locator/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func searchRequest(origin models.Coordinates) *maps.NearbySearchRequest {
	return &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: origin.Latitude, Lng: origin.Longitude},
		Radius:   places.SearchRadiusMeters,
		Type:     maps.PlaceTypeSubwayStation,
	}
}

func searchResult(name, placeID string, lat, lng float64) maps.PlacesSearchResult {
	return maps.PlacesSearchResult{
		Name:     name,
		PlaceID:  placeID,
		Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: lat, Lng: lng}},
	}
}

func TestNearestStation(t *testing.T) {
	mockClient := mocks.NewMapsClient(t)
	provider := places.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()
	origin := models.Coordinates{Latitude: 22.2830, Longitude: 114.1585}

	t.Run("api returns non-success status", func(t *testing.T) {
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, assert.AnError).Once()

		station, err := provider.NearestStation(ctx, origin)

		require.Nil(t, station)
		require.ErrorIs(t, err, places.ErrNotFound)
		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("transport failure", func(t *testing.T) {
		netErr := &url.Error{Op: "Get", URL: "https://maps.googleapis.com", Err: assert.AnError}
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, netErr).Once()

		station, err := provider.NearestStation(ctx, origin)

		require.Nil(t, station)
		require.ErrorIs(t, err, places.ErrTransport)
		require.NotErrorIs(t, err, places.ErrNotFound)
	})

	t.Run("deadline exceeded is a transport failure", func(t *testing.T) {
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, context.DeadlineExceeded).Once()

		_, err := provider.NearestStation(ctx, origin)

		require.ErrorIs(t, err, places.ErrTransport)
	})

	t.Run("unreadable body is a transport failure", func(t *testing.T) {
		var decodeErr error = &json.SyntaxError{Offset: 1}
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, decodeErr).Once()

		_, err := provider.NearestStation(ctx, origin)

		require.ErrorIs(t, err, places.ErrTransport)
		require.NotErrorIs(t, err, places.ErrNotFound)
	})

	t.Run("empty body is a transport failure", func(t *testing.T) {
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, io.EOF).Once()

		_, err := provider.NearestStation(ctx, origin)

		require.ErrorIs(t, err, places.ErrTransport)
	})

	t.Run("zero results", func(t *testing.T) {
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).
			Return(maps.PlacesSearchResponse{}, nil).Once()

		station, err := provider.NearestStation(ctx, origin)

		require.Nil(t, station)
		require.ErrorIs(t, err, places.ErrNotFound)
	})

	t.Run("first result wins without re-sorting", func(t *testing.T) {
		resp := maps.PlacesSearchResponse{Results: []maps.PlacesSearchResult{
			searchResult("Central Station", "abc123", 22.2825, 114.1580),
			// closer to origin, but ranked second by the provider
			searchResult("Closer Station", "def456", 22.2830, 114.1585),
		}}
		mockClient.On("NearbySearch", ctx, searchRequest(origin)).Return(resp, nil).Once()

		station, err := provider.NearestStation(ctx, origin)

		require.NoError(t, err)
		require.NotNil(t, station)
		assert.Equal(t, "Central Station", station.Name)
		assert.Equal(t, "abc123", station.PlaceID)
		assert.InEpsilon(t, 22.2825, station.Location.Latitude, 1e-9)
		assert.InEpsilon(t, 114.1580, station.Location.Longitude, 1e-9)
	})
}

func TestNearestStation_CustomRankSelection(t *testing.T) {
	mockClient := mocks.NewMapsClient(t)
	last := func(results []maps.PlacesSearchResult) (maps.PlacesSearchResult, bool) {
		if len(results) == 0 {
			return maps.PlacesSearchResult{}, false
		}
		return results[len(results)-1], true
	}
	provider := places.NewGoogleProvider(mockClient, slog.Default()).WithRankSelection(last)
	ctx := t.Context()
	origin := models.Coordinates{Latitude: 22.3, Longitude: 114.2}

	resp := maps.PlacesSearchResponse{Results: []maps.PlacesSearchResult{
		searchResult("Admiralty", "a", 22.279, 114.165),
		searchResult("Wan Chai", "b", 22.277, 114.173),
	}}
	mockClient.On("NearbySearch", ctx, searchRequest(origin)).Return(resp, nil).Once()

	station, err := provider.NearestStation(ctx, origin)

	require.NoError(t, err)
	assert.Equal(t, "Wan Chai", station.Name)
}

func TestRankFirst(t *testing.T) {
	_, ok := places.RankFirst(nil)
	assert.False(t, ok)

	got, ok := places.RankFirst([]maps.PlacesSearchResult{{Name: "one"}, {Name: "two"}})
	assert.True(t, ok)
	assert.Equal(t, "one", got.Name)
}
