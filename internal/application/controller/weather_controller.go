package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
	"github.com/Ukiyograin/YourWeather/pkg/util/numberutils"
)

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	defaultDays int
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultDays int) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, defaultDays: defaultDays}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/weather/coordinates", controller.GetWeatherByCoordinates)
	controller.api.GET("/forecast", controller.GetForecast)
	controller.api.GET("/search", controller.SearchPlaces)
}

// GetWeather godoc
// @Summary Get current weather for a city
// @Description Geocode the city and return its current conditions
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param country query string false "Country used to disambiguate the city"
// @Success 200 {object} entity.WeatherSnapshot "Snapshot with current conditions"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("weather.http.missing-city"))
	}

	snapshot, err := controller.useCase.WeatherForPlace(c.Request().Context(), city, strings.TrimSpace(c.QueryParam("country")))
	if err != nil {
		return handleWeatherError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// GetForecast godoc
// @Summary Get the forecast for a city
// @Description Geocode the city and return current, hourly (24 h) and daily conditions
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Param country query string false "Country used to disambiguate the city"
// @Param days query int false "Forecast days (1-16)" default(7)
// @Success 200 {object} entity.WeatherSnapshot "Forecast snapshot"
// @Failure 400 {object} map[string]string "Missing city"
// @Failure 404 {object} map[string]string "City not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("weather.http.missing-city"))
	}
	days := numberutils.ToIntWithDefault(c.QueryParam("days"), controller.defaultDays)

	snapshot, err := controller.useCase.ForecastForPlace(c.Request().Context(), city, strings.TrimSpace(c.QueryParam("country")), days)
	if err != nil {
		return handleWeatherError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// SearchPlaces godoc
// @Summary Search places
// @Description Return up to ten places matching free text, in relevance order
// @Tags weather
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} entity.Place "Candidate places"
// @Failure 400 {object} map[string]string "Empty query"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /search [get]
func (controller *WeatherController) SearchPlaces(c echo.Context) error {
	places, err := controller.useCase.SearchPlaces(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return handleWeatherError(c, err)
	}
	return c.JSON(http.StatusOK, places)
}

// GetWeatherByCoordinates godoc
// @Summary Get current weather for a coordinate
// @Description Return current conditions at a latitude/longitude pair
// @Tags weather
// @Produce json
// @Param lat query number true "Latitude (-90 to 90)"
// @Param lon query number true "Longitude (-180 to 180)"
// @Success 200 {object} entity.WeatherSnapshot "Snapshot with current conditions"
// @Failure 400 {object} map[string]string "Invalid coordinate"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /weather/coordinates [get]
func (controller *WeatherController) GetWeatherByCoordinates(c echo.Context) error {
	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("weather.http.invalid-coordinate"))
	}

	snapshot, err := controller.useCase.WeatherForCoordinates(c.Request().Context(), entity.Coordinate{Latitude: lat, Longitude: lon})
	if err != nil {
		return handleWeatherError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot)
}

// handleWeatherError maps use case errors to HTTP statuses
func handleWeatherError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, weather.ErrCityNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, weather.ErrEmptyQuery):
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("weather.http.missing-query"))
	case errors.Is(err, weather.ErrInvalidCoordinate):
		return errorJSON(c, http.StatusBadRequest, msg.GetMessage("weather.http.invalid-coordinate"))
	default:
		log.Error("Upstream weather request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		return errorJSON(c, http.StatusBadGateway, err.Error())
	}
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
