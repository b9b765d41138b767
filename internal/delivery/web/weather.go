package web

import (
	"context"
	"net/http"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/usecase"
)

type dashboardPage struct {
	City    string
	Theme   domain.Theme
	Reading *domain.WeatherReading
	Loading bool
	Error   string
}

// WeatherHandler serves the weather dashboard.
type WeatherHandler struct {
	weatherUC *usecase.WeatherUsecase
	wait      time.Duration
	pages     *Renderer
}

// NewWeatherHandler builds the dashboard handler. A search blocks the page
// for at most wait; past that the page renders Loading and refreshes itself.
func NewWeatherHandler(uc *usecase.WeatherUsecase, wait time.Duration) (*WeatherHandler, error) {
	pages, err := NewRenderer("weather")
	if err != nil {
		return nil, err
	}
	return &WeatherHandler{weatherUC: uc, wait: wait, pages: pages}, nil
}

func (h *WeatherHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Dashboard)
	mux.Handle("GET /static/", StaticHandler())
}

// GET /?city= starts a search that supersedes any in flight for the session.
func (h *WeatherHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sid, ok := domain.SessionIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	h.weatherUC.Search(sid, r.URL.Query().Get("city"))

	ctx, cancel := context.WithTimeout(r.Context(), h.wait)
	defer cancel()
	snap := h.weatherUC.Await(ctx, sid)

	data := dashboardPage{
		City:    snap.State.Locator,
		Theme:   snap.Theme,
		Reading: snap.State.Data,
		Loading: snap.State.Loading(),
	}
	if snap.State.Failed() {
		data.Error = snap.State.Message
	}
	h.pages.Render(w, r, http.StatusOK, "dashboard", data)
}
