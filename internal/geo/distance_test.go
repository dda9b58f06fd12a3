package geo_test

import (
	"testing"

	"github.com/UnknownOlympus/mtr-locator/internal/geo"
	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	central := models.Coordinates{Latitude: 22.2820, Longitude: 114.1588}
	admiralty := models.Coordinates{Latitude: 22.2793, Longitude: 114.1650}

	t.Run("same point is zero", func(t *testing.T) {
		assert.InDelta(t, 0, geo.Distance(central, central), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, geo.Distance(central, admiralty), geo.Distance(admiralty, central), 1e-9)
	})

	t.Run("known distance", func(t *testing.T) {
		// roughly 700 m between Central and Admiralty platforms
		assert.InDelta(t, 700, geo.Distance(central, admiralty), 50)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		a := models.Coordinates{Latitude: 0, Longitude: 0}
		b := models.Coordinates{Latitude: 1, Longitude: 0}
		assert.InDelta(t, 111195, geo.Distance(a, b), 1)
	})

	t.Run("non-negative across hemispheres", func(t *testing.T) {
		points := []models.Coordinates{
			{Latitude: 90, Longitude: 0},
			{Latitude: -90, Longitude: 180},
			{Latitude: 22.3, Longitude: 114.2},
			{Latitude: -33.87, Longitude: 151.21},
			{Latitude: 51.5, Longitude: -0.12},
		}
		for _, a := range points {
			for _, b := range points {
				d := geo.Distance(a, b)
				assert.GreaterOrEqual(t, d, 0.0)
				assert.InDelta(t, d, geo.Distance(b, a), 1e-6)
			}
		}
	})

	t.Run("antipodal is half circumference", func(t *testing.T) {
		a := models.Coordinates{Latitude: 0, Longitude: 0}
		b := models.Coordinates{Latitude: 0, Longitude: 180}
		assert.InDelta(t, 20015086, geo.Distance(a, b), 10)
	})
}
