package weather

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
)

const (
	DefaultForecastDays = 3
	MaxForecastDays     = 16
	MaxHourlyPoints     = 24
	MaxSearchResults    = 10
)

type UseCase interface {
	// ResolveOne geocodes city, optionally qualified by country, to its best match.
	// Any failure is logged and reported as not found.
	ResolveOne(ctx context.Context, city string, country string) (*entity.Place, bool)

	// SearchPlaces returns up to ten candidate places for free text, in upstream order.
	SearchPlaces(ctx context.Context, query string) ([]entity.Place, error)

	// FetchCurrent returns the current conditions at coordinate.
	FetchCurrent(ctx context.Context, coordinate entity.Coordinate) (*entity.CurrentConditions, error)

	// FetchForecast returns current, hourly and daily weather at coordinate.
	// days <= 0 means three days; more than sixteen is capped.
	FetchForecast(ctx context.Context, coordinate entity.Coordinate, days int) (*entity.WeatherSnapshot, error)

	// WeatherForPlace resolves city and returns a snapshot with current conditions only.
	WeatherForPlace(ctx context.Context, city string, country string) (*entity.WeatherSnapshot, error)

	// ForecastForPlace resolves city and returns a full forecast snapshot.
	ForecastForPlace(ctx context.Context, city string, country string, days int) (*entity.WeatherSnapshot, error)

	// WeatherForCoordinates returns current conditions at coordinate under the current-location name.
	WeatherForCoordinates(ctx context.Context, coordinate entity.Coordinate) (*entity.WeatherSnapshot, error)
}
