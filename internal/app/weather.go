package app

import (
	"fmt"
	"net/http"
	"time"

	"shopfront/config"
	v1 "shopfront/internal/delivery/http/v1"
	"shopfront/internal/delivery/web"
	"shopfront/internal/infrastructure/cache"
	"shopfront/internal/infrastructure/openweather"
	"shopfront/internal/usecase"
)

// searchWait bounds how long a search request blocks before answering
// with the Loading state.
const searchWait = 2 * time.Second

// NewWeather wires the weather client, session resources and handlers.
func NewWeather(cfg *config.Config) (*App, error) {
	client := openweather.NewClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.UpstreamTimeout)

	// Evicted sessions cancel their fetch in flight.
	sessions := cache.NewMemoryCacheWithEviction(cfg.SessionTTL, 10*time.Minute, usecase.CloseResource)
	weatherUC := usecase.NewWeatherUsecase(client, sessions, cfg)

	mux := http.NewServeMux()

	dashboard, err := web.NewWeatherHandler(weatherUC, searchWait)
	if err != nil {
		return nil, fmt.Errorf("failed to load weather templates: %w", err)
	}
	dashboard.Register(mux)

	weatherHandler := v1.NewWeatherHandler(weatherUC, searchWait)
	mux.HandleFunc("GET /api/v1/weather", weatherHandler.Lookup)
	mux.HandleFunc("POST /api/v1/weather/search", weatherHandler.Search)
	mux.HandleFunc("GET /api/v1/weather/state", weatherHandler.State)

	return newApp(config.ServiceWeather, cfg.WeatherPort, cfg, mux)
}
