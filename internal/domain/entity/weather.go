package entity

import "time"

// CurrentConditions is the observation block of a snapshot.
type CurrentConditions struct {
	Temperature         float64   `json:"temperature"`
	ApparentTemperature float64   `json:"apparentTemperature"`
	Humidity            int       `json:"humidity"`
	WindSpeed           float64   `json:"windSpeed"`
	WindDirection       float64   `json:"windDirection"`
	Pressure            float64   `json:"pressure"`
	Precipitation       float64   `json:"precipitation"`
	CloudCover          int       `json:"cloudCover"`
	WeatherCode         int       `json:"weatherCode"`
	IsDay               bool      `json:"isDay"`
	Condition           string    `json:"condition"`
	Icon                string    `json:"icon"`
	CapturedAt          time.Time `json:"capturedAt"`
}

// HourlyPoint is one hour of the forecast.
type HourlyPoint struct {
	Time                     time.Time `json:"time"`
	Temperature              float64   `json:"temperature"`
	PrecipitationProbability int       `json:"precipitationProbability"`
	WeatherCode              int       `json:"weatherCode"`
	Icon                     string    `json:"icon"`
}

// DailyPoint is one day of the forecast.
type DailyPoint struct {
	Date             time.Time `json:"date"`
	MaxTemperature   float64   `json:"maxTemperature"`
	MinTemperature   float64   `json:"minTemperature"`
	PrecipitationSum float64   `json:"precipitationSum"`
	WeatherCode      int       `json:"weatherCode"`
	Condition        string    `json:"condition"`
	Icon             string    `json:"icon"`
	Sunrise          time.Time `json:"sunrise"`
	Sunset           time.Time `json:"sunset"`
}

// WeatherSnapshot is the normalized weather of one place at one moment.
// Hourly and Daily are never nil; a block the upstream omitted is empty.
type WeatherSnapshot struct {
	City       string            `json:"city"`
	Country    string            `json:"country"`
	Coordinate Coordinate        `json:"coordinate"`
	Timezone   string            `json:"timezone,omitempty"`
	Current    CurrentConditions `json:"current"`
	Hourly     []HourlyPoint     `json:"hourly"`
	Daily      []DailyPoint      `json:"daily"`
	CreatedAt  time.Time         `json:"createdAt"`
}
