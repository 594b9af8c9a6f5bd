package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/api"
	"github.com/Ukiyograin/YourWeather/internal/domain/model/external"
	pkghttp "github.com/Ukiyograin/YourWeather/pkg/http"
)

var fixedNow = time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return data
}

// fakeOpenMeteo serves geocoding under /geo/search and forecasts under /wx/forecast.
type fakeOpenMeteo struct {
	geocoding     string
	forecast      string
	current       string
	status        int
	malformed     bool
	lastGeoQuery  string
	lastGeoCount  string
	lastForecast  map[string]string
	forecastCalls int
}

func (f *fakeOpenMeteo) start(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if f.status != 0 {
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"error":true,"reason":"upstream unavailable"}`))
			return
		}
		if f.malformed {
			_, _ = w.Write([]byte(`{bad`))
			return
		}

		q := r.URL.Query()
		switch r.URL.Path {
		case "/geo/search":
			f.lastGeoQuery = q.Get("name")
			f.lastGeoCount = q.Get("count")
			_, _ = w.Write(loadFixture(t, f.geocoding))
		case "/wx/forecast":
			f.forecastCalls++
			f.lastForecast = map[string]string{}
			for key := range q {
				f.lastForecast[key] = q.Get(key)
			}
			if q.Has("hourly") {
				_, _ = w.Write(loadFixture(t, f.forecast))
			} else {
				_, _ = w.Write(loadFixture(t, f.current))
			}
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestUseCase(t *testing.T, fake *fakeOpenMeteo) UseCase {
	t.Helper()
	server := fake.start(t)
	opts := pkghttp.ClientOptions{ReadTimeout: 2 * time.Second}
	return NewWeatherUseCase(
		api.NewGeocodingGateway(server.URL+"/geo", "zh", opts),
		api.NewForecastGateway(server.URL+"/wx", "zh", opts),
		Config{Now: func() time.Time { return fixedNow }},
	)
}

func TestWeatherForPlace(t *testing.T) {
	fake := &fakeOpenMeteo{geocoding: "geocoding_beijing.json", current: "current_beijing.json"}
	uc := newTestUseCase(t, fake)

	snapshot, err := uc.WeatherForPlace(context.Background(), "北京", "中国")
	if err != nil {
		t.Fatalf("WeatherForPlace() error = %v", err)
	}

	if fake.lastGeoQuery != "北京,中国" || fake.lastGeoCount != "1" {
		t.Errorf("geocoding query = %q count = %q", fake.lastGeoQuery, fake.lastGeoCount)
	}
	if _, ok := fake.lastForecast["hourly"]; ok {
		t.Error("current-only request asked for hourly data")
	}

	if snapshot.City != "北京" || snapshot.Country != "中国" {
		t.Errorf("place = %s/%s", snapshot.City, snapshot.Country)
	}
	current := snapshot.Current
	if current.Temperature != 21.5 || current.Humidity != 60 {
		t.Errorf("temperature = %v humidity = %v", current.Temperature, current.Humidity)
	}
	if current.Condition != "阴天" || current.Icon != "partly-cloudy-day" {
		t.Errorf("condition = %q icon = %q", current.Condition, current.Icon)
	}
	if !current.CapturedAt.Equal(fixedNow) || !snapshot.CreatedAt.Equal(fixedNow) {
		t.Errorf("timestamps = %v / %v, want %v", current.CapturedAt, snapshot.CreatedAt, fixedNow)
	}
	if snapshot.Hourly == nil || len(snapshot.Hourly) != 0 || snapshot.Daily == nil || len(snapshot.Daily) != 0 {
		t.Errorf("current-only snapshot has hourly=%v daily=%v", snapshot.Hourly, snapshot.Daily)
	}
}

func TestForecastForPlaceTruncatesParallelArrays(t *testing.T) {
	fake := &fakeOpenMeteo{geocoding: "geocoding_beijing.json", forecast: "forecast_beijing.json"}
	uc := newTestUseCase(t, fake)

	snapshot, err := uc.ForecastForPlace(context.Background(), "北京", "", 7)
	if err != nil {
		t.Fatalf("ForecastForPlace() error = %v", err)
	}

	if fake.lastGeoQuery != "北京" {
		t.Errorf("geocoding query = %q, want 北京", fake.lastGeoQuery)
	}
	if got := fake.lastForecast["forecast_days"]; got != "7" {
		t.Errorf("forecast_days = %q, want 7", got)
	}

	// time 30, temperature 20, probability 24, code 26
	if len(snapshot.Hourly) != 20 {
		t.Fatalf("hourly = %d points, want 20", len(snapshot.Hourly))
	}
	if len(snapshot.Daily) != 7 {
		t.Fatalf("daily = %d points, want 7", len(snapshot.Daily))
	}

	shanghai := time.FixedZone("Asia/Shanghai", 8*3600)
	first := snapshot.Hourly[0]
	if !first.Time.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, shanghai)) {
		t.Errorf("hourly[0].Time = %v", first.Time)
	}
	if first.Temperature != 15 || first.Icon != "sunny" {
		t.Errorf("hourly[0] = %+v", first)
	}
	if snapshot.Hourly[4].Icon != "fog" {
		t.Errorf("hourly[4].Icon = %q, want fog", snapshot.Hourly[4].Icon)
	}

	day := snapshot.Daily[3]
	if day.Condition != "雷暴" || day.Icon != "thunderstorm" || day.MaxTemperature != 18.2 {
		t.Errorf("daily[3] = %+v", day)
	}
	if !day.Sunrise.Equal(time.Date(2026, 10, 21, 6, 23, 0, 0, shanghai)) {
		t.Errorf("daily[3].Sunrise = %v", day.Sunrise)
	}
	if snapshot.Timezone != "Asia/Shanghai" || snapshot.City != "北京" {
		t.Errorf("snapshot city = %q timezone = %q", snapshot.City, snapshot.Timezone)
	}
}

func TestForecastHourlyCappedAt24(t *testing.T) {
	now := fixedNow
	times := make([]string, 48)
	temps := make([]*float64, 48)
	probs := make([]*float64, 48)
	codes := make([]*int, 48)
	for i := range times {
		times[i] = now.Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04")
		v := float64(i)
		c := 0
		temps[i], probs[i], codes[i] = &v, &v, &c
	}

	points := normalizeHourly(&external.HourlyBlock{
		Time:                     times,
		Temperature:              temps,
		PrecipitationProbability: probs,
		WeatherCode:              codes,
	}, time.UTC, now)

	if len(points) != MaxHourlyPoints {
		t.Fatalf("hourly = %d points, want %d", len(points), MaxHourlyPoints)
	}
	if points[23].Temperature != 23 {
		t.Errorf("upstream order not kept: points[23] = %+v", points[23])
	}
}

func TestForecastPartialData(t *testing.T) {
	fake := &fakeOpenMeteo{forecast: "forecast_partial.json"}
	uc := newTestUseCase(t, fake)

	snapshot, err := uc.FetchForecast(context.Background(), entity.Coordinate{Latitude: 39.9, Longitude: 116.4}, 7)
	if err != nil {
		t.Fatalf("FetchForecast() error = %v", err)
	}

	if snapshot.Hourly == nil || len(snapshot.Hourly) != 0 {
		t.Errorf("missing hourly block should give empty sequence, got %v", snapshot.Hourly)
	}
	if len(snapshot.Daily) != 7 {
		t.Fatalf("daily = %d, want 7", len(snapshot.Daily))
	}

	shanghai := time.FixedZone("Asia/Shanghai", 8*3600)

	day1 := snapshot.Daily[1]
	if !day1.Sunrise.Equal(time.Date(2026, 10, 19, 6, 0, 0, 0, shanghai)) {
		t.Errorf("unparsable sunrise fallback = %v", day1.Sunrise)
	}
	if !day1.Sunset.Equal(time.Date(2026, 10, 19, 18, 0, 0, 0, shanghai)) {
		t.Errorf("null sunset fallback = %v", day1.Sunset)
	}

	day2 := snapshot.Daily[2]
	if day2.MaxTemperature != 0 || day2.WeatherCode != -1 || day2.Condition != "未知" || day2.Icon != "unknown" {
		t.Errorf("null elements = %+v", day2)
	}

	day3 := snapshot.Daily[3]
	if !day3.Date.Equal(fixedNow) {
		t.Errorf("unparsable date fallback = %v, want %v", day3.Date, fixedNow)
	}
}

func TestFetchForecastDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "3"},
		{-2, "3"},
		{1, "1"},
		{16, "16"},
		{30, "16"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			fake := &fakeOpenMeteo{forecast: "forecast_beijing.json"}
			uc := newTestUseCase(t, fake)

			if _, err := uc.FetchForecast(context.Background(), entity.Coordinate{}, tt.days); err != nil {
				t.Fatalf("FetchForecast() error = %v", err)
			}
			if got := fake.lastForecast["forecast_days"]; got != tt.want {
				t.Errorf("days %d -> forecast_days = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestFetchCurrentMissingField(t *testing.T) {
	fake := &fakeOpenMeteo{current: "current_missing_humidity.json"}
	uc := newTestUseCase(t, fake)

	_, err := uc.FetchCurrent(context.Background(), entity.Coordinate{Latitude: 39.9, Longitude: 116.4})
	if err == nil {
		t.Fatal("expected error for missing humidity")
	}
	if !strings.HasPrefix(err.Error(), "failed to fetch current weather") {
		t.Errorf("error = %q", err)
	}

	var missing *MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "relative_humidity_2m" {
		t.Errorf("error chain = %v, want MissingFieldError relative_humidity_2m", err)
	}
}

func TestUpstreamFailures(t *testing.T) {
	fake := &fakeOpenMeteo{status: http.StatusServiceUnavailable}
	uc := newTestUseCase(t, fake)
	ctx := context.Background()

	if _, err := uc.FetchCurrent(ctx, entity.Coordinate{}); err == nil || !strings.HasPrefix(err.Error(), "failed to fetch current weather") {
		t.Errorf("FetchCurrent() error = %v", err)
	}
	if _, err := uc.FetchForecast(ctx, entity.Coordinate{}, 3); err == nil || !strings.HasPrefix(err.Error(), "failed to fetch forecast") {
		t.Errorf("FetchForecast() error = %v", err)
	}
	if _, err := uc.SearchPlaces(ctx, "Paris"); err == nil || !strings.HasPrefix(err.Error(), "failed to search places") {
		t.Errorf("SearchPlaces() error = %v", err)
	}

	var statusErr *pkghttp.StatusError
	_, err := uc.FetchForecast(ctx, entity.Coordinate{}, 3)
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("cause not kept in chain: %v", err)
	}

	// geocoding failures become not-found
	if _, err := uc.WeatherForPlace(ctx, "Paris", ""); !errors.Is(err, ErrCityNotFound) {
		t.Errorf("WeatherForPlace() error = %v, want ErrCityNotFound", err)
	}
}

func TestMalformedUpstreamBody(t *testing.T) {
	fake := &fakeOpenMeteo{malformed: true}
	uc := newTestUseCase(t, fake)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		prefix string
	}{
		{"current", func() error { _, err := uc.FetchCurrent(ctx, entity.Coordinate{}); return err }, "failed to fetch current weather: "},
		{"forecast", func() error { _, err := uc.FetchForecast(ctx, entity.Coordinate{}, 3); return err }, "failed to fetch forecast: "},
		{"search", func() error { _, err := uc.SearchPlaces(ctx, "Paris"); return err }, "failed to search places: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("expected an error for a malformed body")
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) || !strings.Contains(err.Error(), "failed to decode response") {
				t.Errorf("error = %q, want %q followed by the decode cause", err, tt.prefix)
			}
			var statusErr *pkghttp.StatusError
			if errors.As(err, &statusErr) {
				t.Errorf("a 200 decode failure must not carry a StatusError: %v", err)
			}
		})
	}

	if place, ok := uc.ResolveOne(ctx, "Paris", "France"); ok || place != nil {
		t.Errorf("ResolveOne() = %v, %v, want not found", place, ok)
	}
	if _, err := uc.ForecastForPlace(ctx, "Paris", "", 3); !errors.Is(err, ErrCityNotFound) {
		t.Errorf("ForecastForPlace() error = %v, want ErrCityNotFound", err)
	}
}

func TestSearchPlaces(t *testing.T) {
	fake := &fakeOpenMeteo{geocoding: "geocoding_many.json"}
	uc := newTestUseCase(t, fake)

	places, err := uc.SearchPlaces(context.Background(), "  Springfield ")
	if err != nil {
		t.Fatalf("SearchPlaces() error = %v", err)
	}

	if fake.lastGeoQuery != "Springfield" || fake.lastGeoCount != "10" {
		t.Errorf("query = %q count = %q", fake.lastGeoQuery, fake.lastGeoCount)
	}
	if len(places) != 10 {
		t.Fatalf("places = %d, want 10", len(places))
	}
	if places[0].Name != "Springfield" {
		t.Errorf("blank upstream name should fall back to the query, got %q", places[0].Name)
	}
	if places[9].Region != "State 9" || places[9].Coordinate.Latitude != 39.9 {
		t.Errorf("places[9] = %+v", places[9])
	}
}

func TestSearchPlacesEmpty(t *testing.T) {
	fake := &fakeOpenMeteo{geocoding: "geocoding_empty.json"}
	uc := newTestUseCase(t, fake)

	places, err := uc.SearchPlaces(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("SearchPlaces() error = %v", err)
	}
	if places == nil || len(places) != 0 {
		t.Errorf("places = %v, want empty slice", places)
	}

	if _, ok := uc.ResolveOne(context.Background(), "Atlantis", ""); ok {
		t.Error("ResolveOne() found a place in an empty result")
	}
	if _, err := uc.ForecastForPlace(context.Background(), "Atlantis", "", 3); !errors.Is(err, ErrCityNotFound) {
		t.Errorf("ForecastForPlace() error = %v, want ErrCityNotFound", err)
	}

	if _, err := uc.SearchPlaces(context.Background(), "   "); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("blank query error = %v, want ErrEmptyQuery", err)
	}
}

func TestWeatherForCoordinates(t *testing.T) {
	fake := &fakeOpenMeteo{current: "current_beijing.json"}
	uc := newTestUseCase(t, fake)

	coordinate := entity.Coordinate{Latitude: 39.9042, Longitude: 116.4074}
	snapshot, err := uc.WeatherForCoordinates(context.Background(), coordinate)
	if err != nil {
		t.Fatalf("WeatherForCoordinates() error = %v", err)
	}
	if snapshot.City != DefaultCurrentLocationName {
		t.Errorf("city = %q, want %q", snapshot.City, DefaultCurrentLocationName)
	}
	if snapshot.Coordinate != coordinate {
		t.Errorf("coordinate = %+v", snapshot.Coordinate)
	}

	calls := fake.forecastCalls
	if _, err := uc.WeatherForCoordinates(context.Background(), entity.Coordinate{Latitude: 120}); !errors.Is(err, ErrInvalidCoordinate) {
		t.Errorf("error = %v, want ErrInvalidCoordinate", err)
	}
	if fake.forecastCalls != calls {
		t.Error("invalid coordinate reached the upstream")
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	fake := &fakeOpenMeteo{forecast: "forecast_beijing.json"}
	uc := newTestUseCase(t, fake)

	first, err := uc.FetchForecast(context.Background(), entity.Coordinate{}, 7)
	if err != nil {
		t.Fatalf("FetchForecast() error = %v", err)
	}
	second, err := uc.FetchForecast(context.Background(), entity.Coordinate{}, 7)
	if err != nil {
		t.Fatalf("FetchForecast() error = %v", err)
	}

	first.Hourly[0].Temperature = 99
	if second.Hourly[0].Temperature == 99 {
		t.Error("snapshots share hourly storage")
	}
}
