package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/mtr-locator/internal/config"
	"github.com/UnknownOlympus/mtr-locator/internal/geocoding"
	"github.com/UnknownOlympus/mtr-locator/internal/metrics"
	"github.com/UnknownOlympus/mtr-locator/internal/places"
	"github.com/UnknownOlympus/mtr-locator/internal/server"
	"github.com/UnknownOlympus/mtr-locator/internal/service"
	"github.com/UnknownOlympus/mtr-locator/internal/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Outbound calls share one client so the upstream timeout also bounds connection setup.
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}

	finder, err := places.New(places.Config{
		APIKey:     cfg.APIKey,
		RateLimit:  cfg.RateLimit,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("Failed to create places provider: %v", err)
	}

	// The geocoder only serves address-only requests, so a missing key disables it instead of stopping the service.
	geoProvider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:       geocoding.ProviderType(cfg.ProviderType),
		APIKey:     cfg.APIKey,
		RateLimit:  cfg.RateLimit,
		Region:     cfg.Region,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	switch {
	case errors.Is(err, geocoding.ErrMissingAPIKey):
		logger.WarnContext(ctx, "Geocoding disabled, requests must carry coordinates", "type", cfg.ProviderType)
		geoProvider = nil
	case err != nil:
		log.Fatalf("Failed to create geocoding provider: %v", err)
	default:
		logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)
	}

	scraper := status.NewScraper(httpClient, cfg.Status.URL, logger, status.WithSelector(cfg.Status.Selector))

	locator := service.NewLocatorService(logger, finder, geoProvider, scraper, appMetrics, service.Options{
		UpstreamTimeout: cfg.UpstreamTimeout,
		ExitLookup:      cfg.ExitLookup,
		AddrPrefix:      cfg.AddrPrefix,
	})

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	if err = server.New(logger, locator, appMetrics, reg).Run(ctx, cfg.Port, cfg.ShutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "API server stopped with error", "error", err)
		stop()
		os.Exit(1)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified	 or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
