package api

import (
	"context"
	"strconv"

	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
	"github.com/Ukiyograin/YourWeather/pkg/http"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
	language   string
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, language string, clientOptions http.ClientOptions) GeocodingGateway {
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		language:   language,
	}
}

// SearchPlaces calls GET /search
func (g *geocodingGatewayImpl) SearchPlaces(ctx context.Context, name string, count int) (*external.GeocodingResponse, error) {
	successResp, errResp, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/search").
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    strconv.Itoa(count),
			"language": g.language,
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.GeocodingResponse), nil
	}

	return nil, upstreamError(errResp, err)
}
