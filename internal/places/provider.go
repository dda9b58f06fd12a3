// Package places resolves subway stations, their exits and walking routes
// through the Google Maps Places and Directions web services.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"googlemaps.github.io/maps"
)

// MapsClient is the subset of *maps.Client used by GoogleProvider.
type MapsClient interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// Errors reported by GoogleProvider. Callers match them with errors.Is.
var (
	ErrNotFound   = errors.New("no MTR stations found nearby")
	ErrDetails    = errors.New("failed to get station details")
	ErrNoExit     = errors.New("no exit information for station")
	ErrDirections = errors.New("failed to get walking directions")
	ErrTransport  = errors.New("upstream request failed")
	ErrMissingKey = errors.New("REQUEST_DENIED - the provided API key is missing")
)

// GoogleProvider talks to the Places and Directions APIs.
type GoogleProvider struct {
	client    MapsClient   // client is the Google Maps API client
	log       *slog.Logger // log is the logger for logging operations
	selection RankSelection
}

// Config holds what is needed to build a GoogleProvider on top of a real maps client.
type Config struct {
	APIKey     string       // APIKey is sent verbatim with every request.
	RateLimit  int          // RateLimit in requests per second, 0 disables limiting.
	BaseURL    string       // BaseURL overrides https://maps.googleapis.com, used by tests.
	HTTPClient *http.Client // HTTPClient carries the per-call timeout.
	Logger     *slog.Logger
}

// NewGoogleProvider wraps an existing client.
func NewGoogleProvider(client MapsClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log, selection: RankFirst}
}

// WithRankSelection replaces the default RankFirst strategy.
func (gp *GoogleProvider) WithRankSelection(selection RankSelection) *GoogleProvider {
	gp.selection = selection
	return gp
}

// New builds a GoogleProvider backed by *maps.Client.
// A missing API key is not fatal: it is logged and every call fails the way
// the upstream would reject an unauthenticated request.
func New(cfg Config) (*GoogleProvider, error) {
	if cfg.APIKey == "" {
		cfg.Logger.Warn("Google Maps API key is not set, places lookups will be rejected")
		return NewGoogleProvider(missingKeyClient{}, cfg.Logger), nil
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(cfg.RateLimit))
	}
	if cfg.HTTPClient != nil {
		clientOpts = append(clientOpts, maps.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(cfg.BaseURL))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, cfg.Logger), nil
}

// classify wraps err with ErrTransport when the request never got a readable
// provider answer and with kind otherwise. Only a provider status may become kind.
func classify(kind error, err error) error {
	if isTransport(err) {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return fmt.Errorf("%w: %w", kind, err)
}

// isTransport reports network failures, deadlines, cancellations, bodies that
// are not provider JSON (gateway error pages) and the missing key stub.
func isTransport(err error) bool {
	var (
		urlErr    *url.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	return errors.As(err, &urlErr) ||
		errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrMissingKey)
}

type missingKeyClient struct{}

func (missingKeyClient) NearbySearch(
	context.Context, *maps.NearbySearchRequest,
) (maps.PlacesSearchResponse, error) {
	return maps.PlacesSearchResponse{}, ErrMissingKey
}

func (missingKeyClient) PlaceDetails(context.Context, *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	return maps.PlaceDetailsResult{}, ErrMissingKey
}

func (missingKeyClient) Directions(
	context.Context, *maps.DirectionsRequest,
) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	return nil, nil, ErrMissingKey
}
