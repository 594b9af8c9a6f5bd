package api

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
)

// Variables requested from the forecast endpoint.
var (
	CurrentVariables = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"apparent_temperature",
		"is_day",
		"precipitation",
		"weather_code",
		"cloud_cover",
		"pressure_msl",
		"wind_speed_10m",
		"wind_direction_10m",
	}
	HourlyVariables = []string{
		"temperature_2m",
		"precipitation_probability",
		"weather_code",
	}
	DailyVariables = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"sunrise",
		"sunset",
	}
)

// ForecastGateway defines the Open-Meteo forecast calls
type ForecastGateway interface {
	// GetCurrent requests only the current block for coordinate.
	GetCurrent(ctx context.Context, coordinate entity.Coordinate) (*external.ForecastResponse, error)

	// GetForecast requests the current, hourly and daily blocks for the given number of days.
	GetForecast(ctx context.Context, coordinate entity.Coordinate, days int) (*external.ForecastResponse, error)
}
