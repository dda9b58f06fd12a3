// Package server exposes the locator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/mtr-locator/internal/metrics"
	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/UnknownOlympus/mtr-locator/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 30 * time.Second
)

// Locator is implemented by service.LocatorService.
type Locator interface {
	FindNearest(ctx context.Context, req service.FindRequest) (*models.NearestStation, error)
	Status(ctx context.Context) (*models.StatusReport, error)
}

// Server serves the locator API, health checks and metrics.
type Server struct {
	log      *slog.Logger
	locator  Locator
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	validate *validator.Validate
}

func New(log *slog.Logger, locator Locator, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		log:      log,
		locator:  locator,
		metrics:  m,
		gatherer: gatherer,
		validate: validator.New(),
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /find_nearest_mtr", s.handleFindNearest)
	mux.HandleFunc("GET /mtr_status", s.handleStatus)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return Chain(mux,
		RequestID,
		Logging(s.log, s.metrics),
		Recovery(s.log),
	)
}

// Run listens on port until ctx is canceled, then shuts down within shutdownTimeout.
func (s *Server) Run(ctx context.Context, port int, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.InfoContext(ctx, "Starting API server", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down API server: %w", err)
	}

	return nil
}
