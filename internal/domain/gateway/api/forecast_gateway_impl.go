package api

import (
	"context"
	"strconv"
	"strings"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
	"github.com/Ukiyograin/YourWeather/pkg/http"
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
	language   string
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, language string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		language:   language,
	}
}

// GetCurrent calls GET /forecast with the current variables only
func (f *forecastGatewayImpl) GetCurrent(ctx context.Context, coordinate entity.Coordinate) (*external.ForecastResponse, error) {
	params := f.baseParams(coordinate)
	params["current"] = strings.Join(CurrentVariables, ",")

	return f.fetch(ctx, params)
}

// GetForecast calls GET /forecast with current, hourly and daily variables
func (f *forecastGatewayImpl) GetForecast(ctx context.Context, coordinate entity.Coordinate, days int) (*external.ForecastResponse, error) {
	params := f.baseParams(coordinate)
	params["current"] = strings.Join(CurrentVariables, ",")
	params["hourly"] = strings.Join(HourlyVariables, ",")
	params["daily"] = strings.Join(DailyVariables, ",")
	params["forecast_days"] = strconv.Itoa(days)

	return f.fetch(ctx, params)
}

func (f *forecastGatewayImpl) baseParams(coordinate entity.Coordinate) map[string]string {
	return map[string]string{
		"latitude":  strconv.FormatFloat(coordinate.Latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(coordinate.Longitude, 'f', -1, 64),
		"timezone":  "auto",
		"language":  f.language,
	}
}

func (f *forecastGatewayImpl) fetch(ctx context.Context, params map[string]string) (*external.ForecastResponse, error) {
	successResp, errResp, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	return nil, upstreamError(errResp, err)
}
