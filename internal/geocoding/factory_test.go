package geocoding_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/UnknownOlympus/mtr-locator/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	t.Run("create Google provider successfully", func(t *testing.T) {
		config := geocoding.ProviderConfig{
			Type:      geocoding.ProviderTypeGoogle,
			APIKey:    "test-api-key",
			RateLimit: 10,
			Logger:    logger,
		}

		provider, err := geocoding.NewProvider(config)

		require.NoError(t, err)
		_, ok := provider.(*geocoding.GoogleProvider)
		assert.True(t, ok, "expected provider to be *GoogleProvider")
	})

	t.Run("create Google provider without API key fails", func(t *testing.T) {
		config := geocoding.ProviderConfig{
			Type:   geocoding.ProviderTypeGoogle,
			Logger: logger,
		}

		provider, err := geocoding.NewProvider(config)

		require.ErrorIs(t, err, geocoding.ErrMissingAPIKey)
		require.Nil(t, provider)
	})

	t.Run("create Google provider with custom HTTP client", func(t *testing.T) {
		config := geocoding.ProviderConfig{
			Type:       geocoding.ProviderTypeGoogle,
			APIKey:     "test-api-key",
			HTTPClient: &http.Client{Timeout: time.Second},
			Logger:     logger,
		}

		provider, err := geocoding.NewProvider(config)

		require.NoError(t, err)
		require.NotNil(t, provider)
	})

	t.Run("create Nominatim provider without API key", func(t *testing.T) {
		config := geocoding.ProviderConfig{
			Type:       geocoding.ProviderTypeNominatim,
			HTTPClient: &http.Client{Timeout: time.Second},
			Logger:     logger,
		}

		provider, err := geocoding.NewProvider(config)

		require.NoError(t, err)
		_, ok := provider.(*geocoding.NominatimProvider)
		assert.True(t, ok, "expected provider to be *NominatimProvider")
	})

	t.Run("unsupported provider type", func(t *testing.T) {
		config := geocoding.ProviderConfig{
			Type:   geocoding.ProviderType("visicom"),
			Logger: logger,
		}

		provider, err := geocoding.NewProvider(config)

		require.Error(t, err)
		require.Nil(t, provider)
		assert.Contains(t, err.Error(), "unsupported provider type: visicom")
	})

	t.Run("empty provider type", func(t *testing.T) {
		provider, err := geocoding.NewProvider(geocoding.ProviderConfig{Logger: logger})

		require.Error(t, err)
		require.Nil(t, provider)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestNewProvider_NominatimRegion(t *testing.T) {
	var countryCode string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		countryCode = req.URL.Query().Get("countrycodes")
		return jsonResponse(http.StatusOK, `[{"lat":"22.1935","lon":"113.5397"}]`), nil
	})}

	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:       geocoding.ProviderTypeNominatim,
		Region:     "mo",
		HTTPClient: client,
		Logger:     slog.Default(),
	})
	require.NoError(t, err)

	coords, err := provider.Geocode(t.Context(), "Senado Square")

	require.NoError(t, err)
	assert.Equal(t, "mo", countryCode)
	assert.InDelta(t, 113.5397, coords.Longitude, 1e-9)
}

func TestProviderType_Constants(t *testing.T) {
	assert.Equal(t, "google", string(geocoding.ProviderTypeGoogle))
	assert.Equal(t, "nominatim", string(geocoding.ProviderTypeNominatim))
}
