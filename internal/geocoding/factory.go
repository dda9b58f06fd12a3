package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type       ProviderType // Type of provider to create
	APIKey     string       // API key (used by Google provider)
	RateLimit  int          // Rate limit for requests per second
	Region     string       // Country the results are restricted to, DefaultRegion when empty
	HTTPClient *http.Client // HTTP client carrying the outbound timeout, optional
	Logger     *slog.Logger // Logger for the provider
}

// ErrMissingAPIKey is returned when the Google provider is requested without a key.
var ErrMissingAPIKey = errors.New("API key is required for Google provider")

// NewProvider creates a geocoding provider based on the provided configuration.
//
// Supported provider types:
// - "google": Google Maps Geocoding API (requires API key)
// - "nominatim": OpenStreetMap Nominatim API (free, no API key required)
func NewProvider(config ProviderConfig) (Provider, error) {
	switch config.Type {
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeNominatim:
		return newNominatimProvider(config), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
	}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}
	if config.HTTPClient != nil {
		clientOpts = append(clientOpts, maps.WithHTTPClient(config.HTTPClient))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Region, config.Logger), nil
}

func newNominatimProvider(config ProviderConfig) Provider {
	provider := NewNominatimProvider(config.Logger)
	if config.HTTPClient != nil {
		provider.client = config.HTTPClient
	}
	if config.Region != "" {
		provider.countryCode = config.Region
	}

	return provider
}
