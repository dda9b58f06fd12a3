package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/mtr-locator/internal/places"
	"github.com/UnknownOlympus/mtr-locator/internal/service"
	"github.com/UnknownOlympus/mtr-locator/internal/status"
	"github.com/go-playground/validator/v10"
)

// Messages returned in the error envelope. Upstream details never reach the caller.
const (
	msgNotFound        = "No MTR stations found nearby"
	msgAddressNotFound = "Address could not be located"
	msgBadRequest      = "Request must contain lat and lng or an address"
	msgInvalidBody     = "Invalid JSON body"
	msgStatus          = "Failed to fetch MTR status"
	msgInternal        = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errInvalidBody marks a body that could not be decoded.
var errInvalidBody = errors.New("invalid request body")

// writeError maps err to a status code and a caller-safe message and logs the full error.
func writeError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	code, msg := classifyError(err)

	attrs := []any{"error", err, "status", code, "request_id", w.Header().Get(RequestIDHeader)}
	if code >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "Request failed", attrs...)
	} else {
		log.WarnContext(ctx, "Request rejected", attrs...)
	}

	writeJSON(ctx, log, w, code, errorResponse{Error: msg})
}

func classifyError(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, places.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, service.ErrAddressNotFound):
		return http.StatusNotFound, msgAddressNotFound
	case errors.Is(err, errInvalidBody):
		return http.StatusBadRequest, msgInvalidBody
	case errors.As(err, &validationErrs), errors.Is(err, service.ErrNoCoordinates):
		return http.StatusBadRequest, msgBadRequest
	case errors.Is(err, status.ErrStatusFetch):
		return http.StatusInternalServerError, msgStatus
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}
