package external

// GeocodingResponse is the body of the Open-Meteo geocoding search endpoint.
// Results is absent when nothing matches.
type GeocodingResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationTimeMs float64           `json:"generationtime_ms"`
}

// GeocodingResult is a single candidate location.
type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
}

// ForecastResponse is the body of the Open-Meteo forecast endpoint.
// Blocks that were not requested, or that the upstream dropped, are nil.
type ForecastResponse struct {
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Timezone         string        `json:"timezone"`
	UTCOffsetSeconds int           `json:"utc_offset_seconds"`
	Current          *CurrentBlock `json:"current"`
	Hourly           *HourlyBlock  `json:"hourly"`
	Daily            *DailyBlock   `json:"daily"`
}

// CurrentBlock holds the current observation. Pointer fields distinguish missing from zero.
type CurrentBlock struct {
	Time                string   `json:"time"`
	Temperature         *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity    *float64 `json:"relative_humidity_2m"`
	WindSpeed           *float64 `json:"wind_speed_10m"`
	WindDirection       *float64 `json:"wind_direction_10m"`
	Pressure            *float64 `json:"pressure_msl"`
	Precipitation       *float64 `json:"precipitation"`
	CloudCover          *float64 `json:"cloud_cover"`
	WeatherCode         *int     `json:"weather_code"`
	IsDay               *int     `json:"is_day"`
}

// HourlyBlock holds parallel hourly arrays. Elements may be JSON null.
type HourlyBlock struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WeatherCode              []*int     `json:"weather_code"`
}

// DailyBlock holds parallel daily arrays. Elements may be JSON null.
type DailyBlock struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
	Sunrise          []*string  `json:"sunrise"`
	Sunset           []*string  `json:"sunset"`
}

// APIErrorResponse is the body Open-Meteo returns with a 4xx status.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
