// Package openweather is a client for the OpenWeatherMap current weather API.
package openweather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shopfront/internal/domain"

	"github.com/goccy/go-json"
)

const (
	serviceName  = "weather"
	maxBodyBytes = 1 << 20
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Current fetches the current weather for city in metric units.
func (c *Client) Current(ctx context.Context, city string) (*domain.WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, domain.ErrEmptyCity
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Never echo the request URL: it carries the API key.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstream := &domain.UpstreamError{Service: serviceName, StatusCode: resp.StatusCode}
		var e errorResponse
		if json.Unmarshal(body, &e) == nil {
			upstream.Message = e.Message
		}
		return nil, upstream
	}

	var cr currentResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to decode weather for %q: %w", city, err)
	}
	if len(cr.Weather) == 0 {
		return nil, fmt.Errorf("%w: no conditions for %q", domain.ErrMalformedReading, city)
	}

	return &domain.WeatherReading{
		City:         cr.Name,
		TemperatureC: cr.Main.Temp,
		Condition:    cr.Weather[0].Main,
		Description:  cr.Weather[0].Description,
		HumidityPct:  cr.Main.Humidity,
		WindSpeed:    cr.Wind.Speed,
	}, nil
}
