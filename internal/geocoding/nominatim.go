package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public Nominatim search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

const nominatimUserAgent = "MTR-Locator/1.0 (https://github.com/UnknownOlympus/mtr-locator)"

// NominatimProvider implements the Provider interface using OpenStreetMap's Nominatim API.
// The public instance allows 1 request/second, which the limiter enforces.
type NominatimProvider struct {
	client    HTTPClient    // HTTP client for making requests
	baseURL   string        // Base URL for the Nominatim API
	log       *slog.Logger  // Logger for logging operations
	limiter   *rate.Limiter // limiter keeps us within the usage policy
	userAgent string        // userAgent is required by Nominatim usage policy

	countryCode string
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type nominatimResponse struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = errors.New("nominatim API returned empty response")
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a new Nominatim geocoding provider.
func NewNominatimProvider(log *slog.Logger) *NominatimProvider {
	const timeout = 10
	return NewNominatimProviderWithClient(
		&http.Client{Timeout: timeout * time.Second},
		rate.NewLimiter(rate.Every(time.Second), 1),
		log,
	)
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom HTTP client and limiter.
func NewNominatimProviderWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *NominatimProvider {
	return &NominatimProvider{
		client:    client,
		baseURL:   NominatimBaseURL,
		log:       log,
		limiter:   limiter,
		userAgent: nominatimUserAgent,

		countryCode: DefaultRegion,
	}
}

// Geocode converts an address to coordinates.
//
// Hong Kong addresses go from the most specific part to the least specific one
// ("Flat A, 8 Finance Street, Central"), so when a variation returns nothing the
// leading component is dropped and the search is repeated.
func (np *NominatimProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	np.log.DebugContext(ctx, "Geocoding using Nominatim", "address", address)

	variations := addressFallbacks(address)
	for idx, variation := range variations {
		coords, err := np.geocodeSingleAddress(ctx, variation)
		if err == nil {
			if idx > 0 {
				np.log.InfoContext(ctx, "Geocoded using fallback address",
					"original", address, "fallback", variation, "fallback_level", idx)
			}
			return coords, nil
		}

		if !errors.Is(err, ErrNominatimEmptyResponse) {
			return nil, err
		}

		np.log.DebugContext(ctx, "Address variation returned no results", "variation", variation, "fallback_level", idx)
	}

	np.log.WarnContext(ctx, "All address fallbacks exhausted", "address", address, "variations_tried", len(variations))
	return nil, ErrNominatimEmptyResponse
}

func addressFallbacks(address string) []string {
	parts := strings.Split(address, ",")
	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			trimmed = append(trimmed, p)
		}
	}

	if len(trimmed) == 0 {
		return []string{""}
	}

	variations := make([]string, 0, len(trimmed))
	for i := range trimmed {
		variations = append(variations, strings.Join(trimmed[i:], ", "))
	}

	return variations
}

func (np *NominatimProvider) geocodeSingleAddress(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("countrycodes", np.countryCode)
	query.Set("accept-language", "en,zh-HK")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %s", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %s", ErrNominatimInvalidCoords, results[0].Lon)
	}

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
