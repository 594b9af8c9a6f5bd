package entity

import (
	"fmt"

	"github.com/Ukiyograin/YourWeather/pkg/util/numberutils"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within latitude [-90, 90] and longitude [-180, 180].
func (c Coordinate) Valid() bool {
	return numberutils.IsFloatInRange(c.Latitude, -90, 90) &&
		numberutils.IsFloatInRange(c.Longitude, -180, 180)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
