package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/api"
	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/util/numberutils"
)

const DefaultCurrentLocationName = "当前位置"

// Config holds the use case settings that do not come from the gateways.
type Config struct {
	// CurrentLocationName is the display name of snapshots built from raw coordinates.
	CurrentLocationName string
	// Now is the acquisition clock. Defaults to time.Now.
	Now func() time.Time
}

type weatherUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	currentLocation  string
	now              func() time.Time
}

func NewWeatherUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, config Config) UseCase {
	if config.CurrentLocationName == "" {
		config.CurrentLocationName = DefaultCurrentLocationName
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &weatherUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		currentLocation:  config.CurrentLocationName,
		now:              config.Now,
	}
}

// ResolveOne geocodes "<city>,<country>" (or "<city>") and keeps the first result
func (uc *weatherUseCase) ResolveOne(ctx context.Context, city string, country string) (*entity.Place, bool) {
	query := city
	if country != "" {
		query = city + "," + country
	}

	resp, err := uc.geocodingGateway.SearchPlaces(ctx, query, 1)
	if err != nil {
		log.Warn("Geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, false
	}
	if len(resp.Results) == 0 {
		log.Info("Geocoding returned no place", zap.String("query", query))
		return nil, false
	}

	place := toPlace(resp.Results[0], city)
	return &place, true
}

// SearchPlaces returns up to MaxSearchResults candidates for query
func (uc *weatherUseCase) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := uc.geocodingGateway.SearchPlaces(ctx, query, MaxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	n := numberutils.MinInt(len(resp.Results), MaxSearchResults)
	places := make([]entity.Place, 0, n)
	for _, result := range resp.Results[:n] {
		places = append(places, toPlace(result, query))
	}
	return places, nil
}

// FetchCurrent requests and normalizes the current block at coordinate
func (uc *weatherUseCase) FetchCurrent(ctx context.Context, coordinate entity.Coordinate) (*entity.CurrentConditions, error) {
	current, _, err := uc.fetchCurrent(ctx, coordinate)
	if err != nil {
		return nil, err
	}
	return &current, nil
}

func (uc *weatherUseCase) fetchCurrent(ctx context.Context, coordinate entity.Coordinate) (entity.CurrentConditions, *external.ForecastResponse, error) {
	resp, err := uc.forecastGateway.GetCurrent(ctx, coordinate)
	if err != nil {
		return entity.CurrentConditions{}, nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	current, err := normalizeCurrent(resp.Current, uc.now())
	if err != nil {
		return entity.CurrentConditions{}, nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}
	return current, resp, nil
}

// FetchForecast requests current, hourly and daily blocks in one call and normalizes them
func (uc *weatherUseCase) FetchForecast(ctx context.Context, coordinate entity.Coordinate, days int) (*entity.WeatherSnapshot, error) {
	if days <= 0 {
		days = DefaultForecastDays
	}
	days = numberutils.ClampInt(days, 1, MaxForecastDays)

	resp, err := uc.forecastGateway.GetForecast(ctx, coordinate, days)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	now := uc.now()
	current, err := normalizeCurrent(resp.Current, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	loc := responseLocation(resp)
	return &entity.WeatherSnapshot{
		Coordinate: coordinate,
		Timezone:   resp.Timezone,
		Current:    current,
		Hourly:     normalizeHourly(resp.Hourly, loc, now),
		Daily:      normalizeDaily(resp.Daily, loc, now),
		CreatedAt:  now,
	}, nil
}

// WeatherForPlace resolves city and fetches its current conditions
func (uc *weatherUseCase) WeatherForPlace(ctx context.Context, city string, country string) (*entity.WeatherSnapshot, error) {
	place, ok := uc.ResolveOne(ctx, city, country)
	if !ok {
		return nil, ErrCityNotFound
	}

	current, resp, err := uc.fetchCurrent(ctx, place.Coordinate)
	if err != nil {
		return nil, err
	}

	return &entity.WeatherSnapshot{
		City:       place.Name,
		Country:    place.Country,
		Coordinate: place.Coordinate,
		Timezone:   resp.Timezone,
		Current:    current,
		Hourly:     []entity.HourlyPoint{},
		Daily:      []entity.DailyPoint{},
		CreatedAt:  current.CapturedAt,
	}, nil
}

// ForecastForPlace resolves city and fetches its forecast
func (uc *weatherUseCase) ForecastForPlace(ctx context.Context, city string, country string, days int) (*entity.WeatherSnapshot, error) {
	place, ok := uc.ResolveOne(ctx, city, country)
	if !ok {
		return nil, ErrCityNotFound
	}

	snapshot, err := uc.FetchForecast(ctx, place.Coordinate, days)
	if err != nil {
		return nil, err
	}

	snapshot.City = place.Name
	snapshot.Country = place.Country
	return snapshot, nil
}

// WeatherForCoordinates fetches current conditions for a raw coordinate
func (uc *weatherUseCase) WeatherForCoordinates(ctx context.Context, coordinate entity.Coordinate) (*entity.WeatherSnapshot, error) {
	if !coordinate.Valid() {
		return nil, ErrInvalidCoordinate
	}

	current, resp, err := uc.fetchCurrent(ctx, coordinate)
	if err != nil {
		return nil, err
	}

	return &entity.WeatherSnapshot{
		City:       uc.currentLocation,
		Coordinate: coordinate,
		Timezone:   resp.Timezone,
		Current:    current,
		Hourly:     []entity.HourlyPoint{},
		Daily:      []entity.DailyPoint{},
		CreatedAt:  current.CapturedAt,
	}, nil
}

// toPlace maps a geocoding result, using fallbackName when the upstream name is blank
func toPlace(result external.GeocodingResult, fallbackName string) entity.Place {
	name := result.Name
	if name == "" {
		name = fallbackName
	}
	return entity.Place{
		Name:     name,
		Country:  result.Country,
		Region:   result.Admin1,
		Timezone: result.Timezone,
		Coordinate: entity.Coordinate{
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
		},
	}
}
