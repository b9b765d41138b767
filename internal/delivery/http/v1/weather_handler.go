package v1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/usecase"
	"shopfront/pkg/utils"
)

type WeatherHandler struct {
	weatherUC *usecase.WeatherUsecase
	wait      time.Duration
}

// NewWeatherHandler builds the handler; wait bounds how long a search
// request blocks for its result before returning the Loading state.
func NewWeatherHandler(uc *usecase.WeatherUsecase, wait time.Duration) *WeatherHandler {
	return &WeatherHandler{weatherUC: uc, wait: wait}
}

type weatherResponse struct {
	Reading *domain.WeatherReading `json:"reading"`
	Theme   domain.Theme           `json:"theme"`
}

// GET /api/v1/weather?city=
func (h *WeatherHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	reading, err := h.weatherUC.Lookup(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeFetchError(w, r, err, usecase.WeatherErrorMessage)
		return
	}
	utils.WriteJSON(w, http.StatusOK, weatherResponse{Reading: reading, Theme: domain.SelectTheme(reading)})
}

// POST /api/v1/weather/search starts a search for the session and returns
// its state once settled or after the wait bound.
func (h *WeatherHandler) Search(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		City string `json:"city"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil || strings.TrimSpace(req.City) == "" {
		utils.WriteError(w, http.StatusBadRequest, "City is required")
		return
	}

	h.weatherUC.Search(sid, req.City)

	ctx, cancel := context.WithTimeout(r.Context(), h.wait)
	defer cancel()
	utils.WriteJSON(w, http.StatusOK, h.weatherUC.Await(ctx, sid))
}

// GET /api/v1/weather/state
func (h *WeatherHandler) State(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, http.StatusOK, h.weatherUC.Current(sid))
}
