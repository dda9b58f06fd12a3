package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/UnknownOlympus/mtr-locator/internal/models"
	"github.com/UnknownOlympus/mtr-locator/internal/service"
)

const maxBodyBytes = 1 << 16

// findRequest is the body of POST /find_nearest_mtr.
// When lat and lng are both present address is informational only.
type findRequest struct {
	Address string   `json:"address" validate:"required_without_all=Lat Lng"`
	Lat     *float64 `json:"lat"     validate:"required_with=Lng"`
	Lng     *float64 `json:"lng"     validate:"required_with=Lat"`
}

type findResponse struct {
	StationName       string                 `json:"station_name"`
	StationLat        float64                `json:"station_lat"`
	StationLng        float64                `json:"station_lng"`
	InputLat          float64                `json:"input_lat"`
	InputLng          float64                `json:"input_lng"`
	ExitName          *string                `json:"exit_name,omitempty"`
	WalkingDirections []models.DirectionStep `json:"walking_directions"`
}

func newFindResponse(res *models.NearestStation) findResponse {
	steps := res.Directions
	if steps == nil {
		steps = []models.DirectionStep{}
	}

	return findResponse{
		StationName:       res.Station.Name,
		StationLat:        res.Station.Location.Latitude,
		StationLng:        res.Station.Location.Longitude,
		InputLat:          res.Input.Latitude,
		InputLng:          res.Input.Longitude,
		ExitName:          res.Exit,
		WalkingDirections: steps,
	}
}

func (s *Server) handleFindNearest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req findRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(ctx, s.log, w, fmt.Errorf("%w: %w", errInvalidBody, err))
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(ctx, s.log, w, err)
		return
	}

	res, err := s.locator.FindNearest(ctx, service.FindRequest{Address: req.Address, Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		writeError(ctx, s.log, w, err)
		return
	}

	writeJSON(ctx, s.log, w, http.StatusOK, newFindResponse(res))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := s.locator.Status(ctx)
	if err != nil {
		writeError(ctx, s.log, w, err)
		return
	}

	writeJSON(ctx, s.log, w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}
