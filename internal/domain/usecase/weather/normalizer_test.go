package weather

import (
	"testing"
	"time"

	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNormalizeCurrentNight(t *testing.T) {
	block := &external.CurrentBlock{
		Temperature:         ptr(-3.2),
		ApparentTemperature: ptr(-7.0),
		RelativeHumidity:    ptr(81.6),
		WindSpeed:           ptr(5.0),
		WeatherCode:         ptr(0),
		IsDay:               ptr(0),
	}

	current, err := normalizeCurrent(block, fixedNow)
	if err != nil {
		t.Fatalf("normalizeCurrent() error = %v", err)
	}
	if current.Icon != "clear-night" || current.Condition != "晴天" {
		t.Errorf("icon = %q condition = %q", current.Icon, current.Condition)
	}
	if current.Humidity != 82 {
		t.Errorf("humidity = %d, want 82", current.Humidity)
	}
	if current.Pressure != 0 || current.CloudCover != 0 {
		t.Errorf("optional fields should default to zero: %+v", current)
	}
}

func TestNormalizeCurrentMissingBlock(t *testing.T) {
	if _, err := normalizeCurrent(nil, fixedNow); err == nil {
		t.Fatal("expected error for missing current block")
	}
}

func TestParseTimeLayouts(t *testing.T) {
	loc := time.FixedZone("GMT+8", 8*3600)

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-10-18T14:00", time.Date(2026, 10, 18, 14, 0, 0, 0, loc), true},
		{"2026-10-18", time.Date(2026, 10, 18, 0, 0, 0, 0, loc), true},
		{"2026-10-18T06:00:00Z", time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC), true},
		{"18/10/2026", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTime(tt.in, loc)
			if ok != tt.ok || !got.Equal(tt.want) {
				t.Errorf("parseTime(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNormalizeDailyMissingArray(t *testing.T) {
	block := &external.DailyBlock{
		Time:           []string{"2026-10-18"},
		WeatherCode:    []*int{ptr(3)},
		TemperatureMax: []*float64{ptr(20.0)},
		TemperatureMin: []*float64{ptr(10.0)},
		Sunrise:        []*string{ptr("2026-10-18T06:20")},
		Sunset:         []*string{ptr("2026-10-18T17:40")},
	}

	if points := normalizeDaily(block, time.UTC, fixedNow); len(points) != 0 {
		t.Errorf("daily without precipitation_sum = %d points, want 0", len(points))
	}
}
