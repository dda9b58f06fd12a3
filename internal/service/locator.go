package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/mtr-locator/internal/geocoding"
	"github.com/UnknownOlympus/mtr-locator/internal/metrics"
	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/UnknownOlympus/mtr-locator/internal/places"
)

// DefaultExitLabel is reported when the station details carry no exit.
const DefaultExitLabel = "Main entrance"

var (
	// ErrNoCoordinates is returned when a request has neither coordinates nor an address.
	ErrNoCoordinates = errors.New("either lat/lng or address is required")
	// ErrAddressNotFound is returned when the geocoder cannot place the address.
	ErrAddressNotFound = errors.New("address could not be located")
)

// StationFinder resolves a station, its exit and the walking route to it.
type StationFinder interface {
	NearestStation(ctx context.Context, origin models.Coordinates) (*models.Station, error)
	SelectExit(ctx context.Context, station models.Station, origin models.Coordinates) (string, error)
	WalkingDirections(ctx context.Context, origin, destination models.Coordinates) ([]models.DirectionStep, error)
}

// StatusFetcher produces the current line status report.
type StatusFetcher interface {
	Fetch(ctx context.Context) (*models.StatusReport, error)
}

// FindRequest is a nearest station query. Lat and Lng take precedence over Address.
type FindRequest struct {
	Address string
	Lat     *float64
	Lng     *float64
}

// Options tune LocatorService behaviour.
type Options struct {
	UpstreamTimeout time.Duration // Deadline for every outbound call, 0 disables it.
	ExitLookup      bool          // Resolve the station exit before fetching directions.
	AddrPrefix      string        // Prepended to addresses before geocoding.
}

// LocatorService orchestrates station lookups and status reports.
type LocatorService struct {
	log      *slog.Logger
	finder   StationFinder
	geocoder geocoding.Provider // may be nil, address-only requests are then rejected
	status   StatusFetcher
	metrics  *metrics.Metrics
	opts     Options
}

// NewLocatorService creates a new instance of LocatorService.
func NewLocatorService(
	log *slog.Logger,
	finder StationFinder,
	geocoder geocoding.Provider,
	status StatusFetcher,
	metrics *metrics.Metrics,
	opts Options,
) *LocatorService {
	return &LocatorService{
		log:      log,
		finder:   finder,
		geocoder: geocoder,
		status:   status,
		metrics:  metrics,
		opts:     opts,
	}
}

// FindNearest resolves the nearest station to the request origin, optionally its exit,
// and the walking route from the origin to the station. The first failing step aborts
// the lookup and no further upstream calls are made.
func (ls *LocatorService) FindNearest(ctx context.Context, req FindRequest) (*models.NearestStation, error) {
	origin, err := ls.origin(ctx, req)
	if err != nil {
		return nil, err
	}

	var station *models.Station
	err = ls.observe(ctx, metrics.UpstreamSearch, func(ctx context.Context) error {
		var callErr error
		station, callErr = ls.finder.NearestStation(ctx, origin)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	result := &models.NearestStation{Station: *station, Input: origin}

	if ls.opts.ExitLookup {
		exit, exitErr := ls.exit(ctx, *station, origin)
		if exitErr != nil {
			return nil, exitErr
		}
		result.Exit = &exit
	}

	err = ls.observe(ctx, metrics.UpstreamDirections, func(ctx context.Context) error {
		var callErr error
		result.Directions, callErr = ls.finder.WalkingDirections(ctx, origin, station.Location)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	ls.log.InfoContext(ctx, "Nearest station found",
		"station", station.Name, "steps", len(result.Directions), "lat", origin.Latitude, "lng", origin.Longitude)

	return result, nil
}

// Status returns the current line status.
func (ls *LocatorService) Status(ctx context.Context) (*models.StatusReport, error) {
	var report *models.StatusReport
	err := ls.observe(ctx, metrics.UpstreamStatus, func(ctx context.Context) error {
		var callErr error
		report, callErr = ls.status.Fetch(ctx)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (ls *LocatorService) origin(ctx context.Context, req FindRequest) (models.Coordinates, error) {
	if req.Lat != nil && req.Lng != nil {
		return models.Coordinates{Latitude: *req.Lat, Longitude: *req.Lng}, nil
	}
	if req.Address == "" || ls.geocoder == nil {
		return models.Coordinates{}, ErrNoCoordinates
	}

	address := ls.opts.AddrPrefix + req.Address
	var coords *models.Coordinates
	err := ls.observe(ctx, metrics.UpstreamGeocode, func(ctx context.Context) error {
		var callErr error
		coords, callErr = ls.geocoder.Geocode(ctx, address)
		return callErr
	})
	switch {
	case errors.Is(err, geocoding.ErrEmptyResponse), errors.Is(err, geocoding.ErrNominatimEmptyResponse):
		return models.Coordinates{}, fmt.Errorf("%w: %w", ErrAddressNotFound, err)
	case err != nil:
		return models.Coordinates{}, err
	}

	ls.log.DebugContext(ctx, "Address geocoded", "address", address, "lat", coords.Latitude, "lng", coords.Longitude)

	return *coords, nil
}

func (ls *LocatorService) exit(ctx context.Context, station models.Station, origin models.Coordinates) (string, error) {
	var label string
	err := ls.observe(ctx, metrics.UpstreamDetails, func(ctx context.Context) error {
		var callErr error
		label, callErr = ls.finder.SelectExit(ctx, station, origin)
		return callErr
	})
	if errors.Is(err, places.ErrNoExit) {
		ls.log.DebugContext(ctx, "No exit found, using default", "station", station.Name)
		ls.metrics.ExitFallbacks.Inc()
		return DefaultExitLabel, nil
	}

	return label, err
}

// observe runs call under the upstream deadline and records its duration.
// A call that outlives the deadline is reported as places.ErrTransport.
func (ls *LocatorService) observe(ctx context.Context, upstream string, call func(context.Context) error) error {
	callCtx := ctx
	if ls.opts.UpstreamTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, ls.opts.UpstreamTimeout)
		defer cancel()
	}

	startTime := time.Now()
	err := call(callCtx)
	ls.metrics.UpstreamSeconds.WithLabelValues(upstream).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	if errors.Is(err, places.ErrNoExit) {
		return err
	}

	ls.metrics.UpstreamErrors.WithLabelValues(upstream).Inc()
	ls.log.ErrorContext(ctx, "Upstream call failed", "upstream", upstream, "error", err)

	if callCtx.Err() != nil && !errors.Is(err, places.ErrTransport) {
		return fmt.Errorf("%w: %w", places.ErrTransport, err)
	}

	return err
}
