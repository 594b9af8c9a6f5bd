package api

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
)

// GeocodingGateway defines the Open-Meteo geocoding calls
type GeocodingGateway interface {
	// SearchPlaces looks up places by name, returning at most count candidates in upstream order.
	// A query matching nothing yields a response with no results and a nil error.
	SearchPlaces(ctx context.Context, name string, count int) (*external.GeocodingResponse, error)
}
