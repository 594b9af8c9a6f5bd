package weather

import (
	"math"
	"time"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
	"github.com/Ukiyograin/YourWeather/internal/domain/weathercode"
	"github.com/Ukiyograin/YourWeather/pkg/util/numberutils"
)

const (
	sunriseFallbackHour = 6
	sunsetFallbackHour  = 18
)

var timeLayouts = []string{"2006-01-02T15:04", "2006-01-02", time.RFC3339}

// responseLocation returns the fixed zone the upstream reported its local times in.
func responseLocation(resp *external.ForecastResponse) *time.Location {
	name := resp.Timezone
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, resp.UTCOffsetSeconds)
}

func normalizeCurrent(block *external.CurrentBlock, now time.Time) (entity.CurrentConditions, error) {
	if block == nil {
		return entity.CurrentConditions{}, errMissingCurrent
	}

	required := []struct {
		name    string
		present bool
	}{
		{"temperature_2m", block.Temperature != nil},
		{"apparent_temperature", block.ApparentTemperature != nil},
		{"relative_humidity_2m", block.RelativeHumidity != nil},
		{"wind_speed_10m", block.WindSpeed != nil},
		{"weather_code", block.WeatherCode != nil},
		{"is_day", block.IsDay != nil},
	}
	for _, field := range required {
		if !field.present {
			return entity.CurrentConditions{}, &MissingFieldError{Field: field.name}
		}
	}

	code := *block.WeatherCode
	isDay := *block.IsDay == 1

	return entity.CurrentConditions{
		Temperature:         *block.Temperature,
		ApparentTemperature: *block.ApparentTemperature,
		Humidity:            int(math.Round(*block.RelativeHumidity)),
		WindSpeed:           *block.WindSpeed,
		WindDirection:       valueOrZero(block.WindDirection),
		Pressure:            valueOrZero(block.Pressure),
		Precipitation:       valueOrZero(block.Precipitation),
		CloudCover:          int(math.Round(valueOrZero(block.CloudCover))),
		WeatherCode:         code,
		IsDay:               isDay,
		Condition:           weathercode.Condition(code),
		Icon:                weathercode.Icon(code, isDay),
		CapturedAt:          now,
	}, nil
}

// normalizeHourly keeps at most MaxHourlyPoints rows of the shortest parallel array.
func normalizeHourly(block *external.HourlyBlock, loc *time.Location, now time.Time) []entity.HourlyPoint {
	if block == nil {
		return []entity.HourlyPoint{}
	}

	n := numberutils.MinInt(
		len(block.Time),
		len(block.Temperature),
		len(block.PrecipitationProbability),
		len(block.WeatherCode),
		MaxHourlyPoints,
	)

	points := make([]entity.HourlyPoint, 0, n)
	for i := 0; i < n; i++ {
		code := codeAt(block.WeatherCode, i)
		points = append(points, entity.HourlyPoint{
			Time:                     parseTimeOr(block.Time[i], loc, now),
			Temperature:              floatAt(block.Temperature, i),
			PrecipitationProbability: int(math.Round(floatAt(block.PrecipitationProbability, i))),
			WeatherCode:              code,
			Icon:                     weathercode.Icon(code, true),
		})
	}
	return points
}

// normalizeDaily keeps the rows of the shortest parallel array.
func normalizeDaily(block *external.DailyBlock, loc *time.Location, now time.Time) []entity.DailyPoint {
	if block == nil {
		return []entity.DailyPoint{}
	}

	n := numberutils.MinInt(
		len(block.Time),
		len(block.WeatherCode),
		len(block.TemperatureMax),
		len(block.TemperatureMin),
		len(block.PrecipitationSum),
		len(block.Sunrise),
		len(block.Sunset),
	)

	points := make([]entity.DailyPoint, 0, n)
	for i := 0; i < n; i++ {
		code := codeAt(block.WeatherCode, i)
		date, ok := parseTime(block.Time[i], loc)
		if !ok {
			date = now.In(loc)
		}
		points = append(points, entity.DailyPoint{
			Date:             date,
			MaxTemperature:   floatAt(block.TemperatureMax, i),
			MinTemperature:   floatAt(block.TemperatureMin, i),
			PrecipitationSum: floatAt(block.PrecipitationSum, i),
			WeatherCode:      code,
			Condition:        weathercode.Condition(code),
			Icon:             weathercode.Icon(code, true),
			Sunrise:          parseClockOr(block.Sunrise[i], loc, date, sunriseFallbackHour),
			Sunset:           parseClockOr(block.Sunset[i], loc, date, sunsetFallbackHour),
		})
	}
	return points
}

func parseTime(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTimeOr(value string, loc *time.Location, fallback time.Time) time.Time {
	if t, ok := parseTime(value, loc); ok {
		return t
	}
	return fallback
}

// parseClockOr parses a sunrise or sunset value, falling back to hour:00 on day.
func parseClockOr(value *string, loc *time.Location, day time.Time, hour int) time.Time {
	if value != nil {
		if t, ok := parseTime(*value, loc); ok {
			return t
		}
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func floatAt(values []*float64, i int) float64 {
	return valueOrZero(values[i])
}

func codeAt(values []*int, i int) int {
	if values[i] == nil {
		return weathercode.Unknown
	}
	return *values[i]
}
