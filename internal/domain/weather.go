package domain

import "context"

// WeatherReading is the current weather for one city, in metric units.
type WeatherReading struct {
	City         string  `json:"cityName"`
	TemperatureC float64 `json:"temperatureC"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	HumidityPct  int     `json:"humidityPct"`
	WindSpeed    float64 `json:"windSpeed"`
}

type WeatherService interface {
	Current(ctx context.Context, city string) (*WeatherReading, error)
}
