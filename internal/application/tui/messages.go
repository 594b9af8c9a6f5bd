package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
)

// snapshotLoadedMsg is sent when a forecast load completes
type snapshotLoadedMsg struct {
	label    string
	snapshot *entity.WeatherSnapshot
	err      error
}

// placesFoundMsg is sent when a place search completes
type placesFoundMsg struct {
	query  string
	places []entity.Place
	err    error
}

// loadCity resolves city and fetches its forecast in the background
func loadCity(useCase weather.UseCase, timeout time.Duration, city string, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snapshot, err := useCase.ForecastForPlace(ctx, city, "", days)
		return snapshotLoadedMsg{label: city, snapshot: snapshot, err: err}
	}
}

// loadCoordinate fetches the forecast at coordinate and labels it name
func loadCoordinate(useCase weather.UseCase, timeout time.Duration, name, country string, coordinate entity.Coordinate, days int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snapshot, err := useCase.FetchForecast(ctx, coordinate, days)
		if err != nil {
			return snapshotLoadedMsg{label: name, err: err}
		}
		snapshot.City = name
		snapshot.Country = country
		return snapshotLoadedMsg{label: name, snapshot: snapshot}
	}
}

// searchPlaces looks up candidate places for query in the background
func searchPlaces(useCase weather.UseCase, timeout time.Duration, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		places, err := useCase.SearchPlaces(ctx, query)
		return placesFoundMsg{query: query, places: places, err: err}
	}
}
