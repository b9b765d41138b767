package usecase

import (
	"context"
	"strings"

	"shopfront/config"
	"shopfront/internal/domain"
	"shopfront/internal/provider"
	"shopfront/internal/session"
	"shopfront/pkg/cache"
	"shopfront/pkg/logger"
)

// WeatherErrorMessage is shown in place of the dashboard when a fetch fails.
const WeatherErrorMessage = "Could not fetch weather data. Please try again."

type WeatherResource = provider.Resource[*domain.WeatherReading]

type WeatherSnapshot struct {
	State provider.State[*domain.WeatherReading] `json:"state"`
	Theme domain.Theme                           `json:"theme"`
}

// WeatherUsecase keeps one weather resource per session. A new search
// cancels the one still in flight for that session.
type WeatherUsecase struct {
	service   domain.WeatherService
	resources *session.Store[*WeatherResource]
}

// NewWeatherUsecase keeps session resources in c, which should be built
// with CloseResource as its eviction hook.
func NewWeatherUsecase(service domain.WeatherService, c cache.CacheService, cfg *config.Config) *WeatherUsecase {
	u := &WeatherUsecase{service: service}
	u.resources = session.NewStore(c, "weather", cfg.SessionTTL, u.newResource)
	return u
}

func (u *WeatherUsecase) newResource() *WeatherResource {
	return provider.NewResource(u.fetch, WeatherErrorMessage)
}

func (u *WeatherUsecase) fetch(ctx context.Context, city string) (*domain.WeatherReading, error) {
	reading, err := u.service.Current(ctx, city)
	if err != nil {
		if ctx.Err() == nil {
			logger.Get().Warn().Err(err).Str("city", city).Msg("Weather: fetch failed")
		}
		return nil, err
	}
	return reading, nil
}

// Search starts loading city for the session. Blank input is ignored.
func (u *WeatherUsecase) Search(sessionID, city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		return
	}
	u.resources.Get(sessionID).Load(city)
}

// Current returns the session's state without waiting.
func (u *WeatherUsecase) Current(sessionID string) WeatherSnapshot {
	return snapshotOf(u.resources.Get(sessionID).Snapshot())
}

// Await waits for the session's fetch in flight, bounded by ctx.
func (u *WeatherUsecase) Await(ctx context.Context, sessionID string) WeatherSnapshot {
	return snapshotOf(u.resources.Get(sessionID).Wait(ctx))
}

// Lookup fetches a reading without touching session state.
func (u *WeatherUsecase) Lookup(ctx context.Context, city string) (*domain.WeatherReading, error) {
	return u.service.Current(ctx, city)
}

// CloseResource is an eviction hook for the session cache.
func CloseResource(_ string, value interface{}) {
	if r, ok := value.(*WeatherResource); ok {
		r.Close()
	}
}

// The theme follows whatever reading is on screen, including the previous
// one while a new search loads.
func snapshotOf(st provider.State[*domain.WeatherReading]) WeatherSnapshot {
	return WeatherSnapshot{State: st, Theme: domain.SelectTheme(st.Data)}
}
