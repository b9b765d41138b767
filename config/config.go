package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "default_secret_CHANGE_ME"

type Config struct {
	Port          string // storefront listen port
	WeatherPort   string
	Env           string
	LogLevel      string
	AllowedOrigin string
	PublicURL     string // absolute storefront URL used in the sitemap
	// Upstream services
	CatalogBaseURL  string
	WeatherBaseURL  string
	WeatherAPIKey   string
	UpstreamTimeout time.Duration
	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string // overrides the per-service cookie name
	// Cache
	CacheProductTTL time.Duration
	CacheImageTTL   time.Duration
	CacheSitemapTTL time.Duration
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string // peers allowed to set X-Forwarded-For
	// Business Rules
	MaxCartQuantity int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: .env for local dev, system env vars otherwise
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		WeatherPort:   getEnv("WEATHER_PORT", "8081"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		PublicURL:     getEnv("PUBLIC_URL", "http://localhost:8080"),

		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		WeatherBaseURL:  getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		WeatherAPIKey:   getEnv("WEATHER_API_KEY", ""),
		UpstreamTimeout: getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second),

		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    getDurationEnv("SESSION_TTL", 24*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", ""),

		// Cache defaults: 5m catalog, 1h thumbnails and sitemap. Zero disables.
		CacheProductTTL: getDurationEnv("CACHE_PRODUCT_TTL", 5*time.Minute),
		CacheImageTTL:   getDurationEnv("CACHE_IMAGE_TTL", time.Hour),
		CacheSitemapTTL: getDurationEnv("CACHE_SITEMAP_TTL", time.Hour),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
		TrustedProxies: getListEnv("TRUSTED_PROXIES"),

		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
	}
}

// Service names accepted by Validate.
const (
	ServiceStorefront = "storefront"
	ServiceWeather    = "weather"
)

// CookieName is the session cookie of the named service. Each service
// defaults to its own name, since browsers share cookies across ports.
func (c *Config) CookieName(service string) string {
	if c.SessionCookie != "" {
		return c.SessionCookie
	}
	return service + "_session"
}

// Validate checks the settings the named service cannot run without.
func (c *Config) Validate(service string) error {
	if c.SessionSecret == defaultSessionSecret {
		log.Println("WARNING: Using default session secret. Set SESSION_SECRET in production.")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	switch service {
	case ServiceStorefront:
		if c.CatalogBaseURL == "" {
			return errors.New("CATALOG_BASE_URL is required")
		}
	case ServiceWeather:
		if c.WeatherBaseURL == "" {
			return errors.New("WEATHER_BASE_URL is required")
		}
		if c.WeatherAPIKey == "" {
			return errors.New("WEATHER_API_KEY is required")
		}
	default:
		return errors.New("unknown service: " + service)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}
