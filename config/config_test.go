package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "8081", cfg.WeatherPort)
	assert.Equal(t, "https://fakestoreapi.com", cfg.CatalogBaseURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheProductTTL)
	assert.Equal(t, time.Hour, cfg.CacheSitemapTTL)
	assert.Equal(t, "http://localhost:8080", cfg.PublicURL)
	assert.Equal(t, 1000, cfg.MaxCartQuantity)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("PORT", "9000")
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("MAX_CART_QUANTITY", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CACHE_PRODUCT_TTL", "0s")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 5, cfg.MaxCartQuantity)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Zero(t, cfg.CacheProductTTL)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	t.Setenv("MAX_CART_QUANTITY", "many")
	t.Setenv("RATE_LIMIT_RPS", "-1")

	cfg := LoadConfig()

	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, 1000, cfg.MaxCartQuantity)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
}

func TestValidate(t *testing.T) {
	base := Config{
		CatalogBaseURL:  "https://fakestoreapi.com",
		WeatherBaseURL:  "https://api.openweathermap.org/data/2.5/weather",
		SessionSecret:   "secret",
		SessionTTL:      time.Hour,
		UpstreamTimeout: time.Second,
	}

	cfg := base
	require.NoError(t, cfg.Validate(ServiceStorefront))

	cfg = base
	require.Error(t, cfg.Validate(ServiceWeather), "weather needs an API key")

	cfg.WeatherAPIKey = "key"
	require.NoError(t, cfg.Validate(ServiceWeather))

	cfg = base
	cfg.UpstreamTimeout = 0
	require.Error(t, cfg.Validate(ServiceStorefront))

	require.Error(t, base.Validate("billing"))
}

func TestLoadConfigTrustedProxies(t *testing.T) {
	t.Setenv("CONFIG_FILE", "testdata/does-not-exist.env")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.0.2.1 ")

	cfg := LoadConfig()

	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.TrustedProxies)
}

func TestCookieName(t *testing.T) {
	cfg := Config{}
	assert.Equal(t, "storefront_session", cfg.CookieName(ServiceStorefront))
	assert.Equal(t, "weather_session", cfg.CookieName(ServiceWeather))
	assert.NotEqual(t, cfg.CookieName(ServiceStorefront), cfg.CookieName(ServiceWeather))

	cfg.SessionCookie = "sid"
	assert.Equal(t, "sid", cfg.CookieName(ServiceWeather))
}
