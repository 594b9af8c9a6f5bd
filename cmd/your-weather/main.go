package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ukiyograin/YourWeather/configs"
	_ "github.com/Ukiyograin/YourWeather/docs"
	"github.com/Ukiyograin/YourWeather/internal/application/controller"
	"github.com/Ukiyograin/YourWeather/internal/application/middleware"
	"github.com/Ukiyograin/YourWeather/internal/application/schedule"
	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/api"
	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/event"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/health"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
	"github.com/Ukiyograin/YourWeather/internal/infra/icon"
	"github.com/Ukiyograin/YourWeather/internal/infra/pubsub"
	httpclient "github.com/Ukiyograin/YourWeather/pkg/http"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
	"github.com/Ukiyograin/YourWeather/pkg/redis"
	"github.com/Ukiyograin/YourWeather/pkg/resource"
)

type eventGateway interface {
	event.Publisher
	event.HealthGateway
}

// @title YourWeather API
// @version 1.0
// @description Open-Meteo backed current weather, forecasts, place search and weather icons.
// @BasePath /api
func main() {
	env := configs.LoadEnv()
	if err := resource.Load(); err != nil {
		log.Fatal("Failed to load properties", zap.Error(err))
	}
	if err := msg.Load(); err != nil {
		log.Fatal("Failed to load messages", zap.Error(err))
	}
	configureLogLevel(resource.GetStringOrDefault("app.log-level", env.LogLevel))
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	apiGroup := e.Group(resource.GetStringOrDefault("app.server.context-path", env.ContextPath))

	// Init Gateways
	clientOptions := httpclient.ClientOptions{
		DefaultHeaders: map[string]string{
			"User-Agent": resource.GetStringOrDefault("app.open-meteo.user-agent", "WeatherApp/1.0"),
			"Accept":     "application/json",
		},
		ReadTimeout: resource.GetDuration("app.open-meteo.timeout"),
		Logger:      log.NewHTTPLogger("open-meteo"),
	}
	clientOptions.Transport = httpclient.NewTransport(clientOptions)

	language := resource.GetStringOrDefault("app.open-meteo.language", "zh")
	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.open-meteo.geocoding-url"), language, clientOptions)
	forecastGateway := api.NewForecastGateway(resource.GetString("app.open-meteo.forecast-url"), language, clientOptions)
	events, closeEvents := newEventGateway()
	defer closeEvents()

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(geocodingGateway, forecastGateway, weather.Config{
		CurrentLocationName: resource.GetString("app.weather.current-location.name"),
	})
	healthUseCase := health.NewHealthUseCase(events)

	// Init Controller
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase, resource.GetInt("app.weather.default-forecast-days"))
	iconController := controller.NewIconController(apiGroup, icon.NewRenderer(), resource.GetInt("app.icon.default-size"))
	healthController := controller.NewHealthController(apiGroup, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	iconController.InitIconRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()
	var scheduler *schedule.WeatherScheduler
	if resource.GetBool("app.refresh.enabled") {
		scheduler = schedule.NewWeatherScheduler(weatherUseCase, events, schedule.WeatherSchedulerConfig{
			CronExpression: resource.GetString("app.refresh.cron"),
			Cities:         resource.GetStringSlice("app.refresh.cities"),
			ForecastDays:   resource.GetInt("app.refresh.forecast-days"),
		})
		if err := scheduler.InitWeatherScheduleTasks(); err != nil {
			log.Fatal("Failed to start refresh schedule", zap.Error(err))
		}
		go logWarmUp(scheduler.WarmUp(appCtx))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	stopApp()
	if scheduler != nil {
		scheduler.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// newEventGateway returns the Redis publisher when enabled, else the log publisher.
func newEventGateway() (eventGateway, func()) {
	if !resource.GetBool("app.redis.enabled") {
		return event.NewLogPublisher(), func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.String("addr", config.Addr()), zap.Error(err))
	}

	publisher := pubsub.NewRedisSnapshotPublisher(client,
		resource.GetString("app.redis.channel-namespace"),
		resource.GetString("app.redis.channel"))
	return publisher, func() {
		if err := client.Close(); err != nil {
			log.Warn("Failed to close redis client", zap.Error(err))
		}
	}
}

func logWarmUp(results <-chan schedule.RefreshResult) {
	for result := range results {
		for _, city := range result.Refreshed {
			log.Info(msg.GetMessage("refresh.warmup-done", city), zap.String("run_id", result.RunID))
		}
		for city, err := range result.Failed {
			log.Warn(msg.GetMessage("refresh.warmup-failed", city, err), zap.String("run_id", result.RunID))
		}
	}
}

func configureLogLevel(level string) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, keeping info", zap.String("level", level))
		return
	}
	log.Configure(os.Stdout, parsed)
}
