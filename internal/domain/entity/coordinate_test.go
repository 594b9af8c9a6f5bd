package entity

import (
	"math"
	"testing"
)

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"beijing", Coordinate{Latitude: 39.9042, Longitude: 116.4074}, true},
		{"poles and antimeridian", Coordinate{Latitude: -90, Longitude: 180}, true},
		{"latitude too high", Coordinate{Latitude: 90.01, Longitude: 0}, false},
		{"longitude too low", Coordinate{Latitude: 0, Longitude: -180.5}, false},
		{"nan", Coordinate{Latitude: math.NaN(), Longitude: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{Latitude: 39.90421, Longitude: 116.40739}
	if got := c.String(); got != "39.9042,116.4074" {
		t.Errorf("String() = %q", got)
	}
}
