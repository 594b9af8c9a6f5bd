package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zapcore"

	"github.com/Ukiyograin/YourWeather/configs"
	"github.com/Ukiyograin/YourWeather/internal/application/tui"
	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/api"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
	httpclient "github.com/Ukiyograin/YourWeather/pkg/http"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
	"github.com/Ukiyograin/YourWeather/pkg/resource"
)

const logFileName = "your-weather-tui.log"

func main() {
	configs.LoadEnv()
	if err := resource.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := msg.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Configure(logFile, zapcore.DebugLevel)
	defer log.Sync()

	clientOptions := httpclient.ClientOptions{
		DefaultHeaders: map[string]string{
			"User-Agent": resource.GetStringOrDefault("app.open-meteo.user-agent", "WeatherApp/1.0"),
		},
		ReadTimeout: resource.GetDuration("app.open-meteo.timeout"),
		Logger:      log.NewHTTPLogger("open-meteo"),
	}
	clientOptions.Transport = httpclient.NewTransport(clientOptions)

	language := resource.GetStringOrDefault("app.open-meteo.language", "zh")
	weatherUseCase := weather.NewWeatherUseCase(
		api.NewGeocodingGateway(resource.GetString("app.open-meteo.geocoding-url"), language, clientOptions),
		api.NewForecastGateway(resource.GetString("app.open-meteo.forecast-url"), language, clientOptions),
		weather.Config{CurrentLocationName: resource.GetString("app.weather.current-location.name")},
	)

	model := tui.NewModel(weatherUseCase, tui.Config{
		DefaultCity:         resource.GetString("app.weather.default-city"),
		Days:                resource.GetInt("app.weather.default-forecast-days"),
		CurrentLocationName: resource.GetString("app.weather.current-location.name"),
		CurrentLocation: entity.Coordinate{
			Latitude:  resource.GetFloat64("app.weather.current-location.latitude"),
			Longitude: resource.GetFloat64("app.weather.current-location.longitude"),
		},
		Timeout: resource.GetDuration("app.open-meteo.timeout") + 5*time.Second,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
