package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
	"github.com/Ukiyograin/YourWeather/internal/domain/model"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
)

type fakeWeatherUseCase struct {
	weather.UseCase
	failing map[string]bool
	days    []int
}

func (f *fakeWeatherUseCase) ForecastForPlace(ctx context.Context, city string, country string, days int) (*entity.WeatherSnapshot, error) {
	f.days = append(f.days, days)
	if f.failing[city] {
		return nil, weather.ErrCityNotFound
	}
	return &entity.WeatherSnapshot{City: city, Hourly: []entity.HourlyPoint{}, Daily: []entity.DailyPoint{}}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.SnapshotReplacedEvent
	err    error
}

func (p *recordingPublisher) PublishSnapshotReplaced(ctx context.Context, evt model.SnapshotReplacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, evt)
	return nil
}

func TestRefreshAll(t *testing.T) {
	useCase := &fakeWeatherUseCase{failing: map[string]bool{"Atlantis": true}}
	publisher := &recordingPublisher{}
	scheduler := NewWeatherScheduler(useCase, publisher, WeatherSchedulerConfig{
		CronExpression: "@every 1h",
		Cities:         []string{"北京", "Atlantis", "上海"},
		ForecastDays:   3,
	})

	result := scheduler.RefreshAll(context.Background())

	if _, err := uuid.Parse(result.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", result.RunID, err)
	}
	if len(result.Refreshed) != 2 || result.Refreshed[0] != "北京" || result.Refreshed[1] != "上海" {
		t.Errorf("Refreshed = %v", result.Refreshed)
	}
	if !errors.Is(result.Failed["Atlantis"], weather.ErrCityNotFound) {
		t.Errorf("Failed = %v", result.Failed)
	}

	if len(publisher.events) != 2 {
		t.Fatalf("published %d events, want 2", len(publisher.events))
	}
	first, second := publisher.events[0], publisher.events[1]
	if first.EventID == second.EventID {
		t.Error("events share an id")
	}
	if first.RunID != result.RunID || first.Type != model.SnapshotReplacedEventType {
		t.Errorf("event = %+v", first)
	}
	if first.City != "北京" || first.Snapshot.City != "北京" {
		t.Errorf("event city = %q snapshot city = %q", first.City, first.Snapshot.City)
	}
	for _, days := range useCase.days {
		if days != 3 {
			t.Errorf("requested %d days, want 3", days)
		}
	}
}

func TestRefreshAllPublishFailure(t *testing.T) {
	publisher := &recordingPublisher{err: errors.New("broker down")}
	scheduler := NewWeatherScheduler(&fakeWeatherUseCase{}, publisher, WeatherSchedulerConfig{Cities: []string{"北京"}})

	result := scheduler.RefreshAll(context.Background())
	if len(result.Refreshed) != 0 || result.Failed["北京"] == nil {
		t.Errorf("result = %+v", result)
	}
}

func TestWarmUp(t *testing.T) {
	publisher := &recordingPublisher{}
	scheduler := NewWeatherScheduler(&fakeWeatherUseCase{}, publisher, WeatherSchedulerConfig{Cities: []string{"北京"}})

	select {
	case result, ok := <-scheduler.WarmUp(context.Background()):
		if !ok {
			t.Fatal("warm-up channel closed without a result")
		}
		if len(result.Refreshed) != 1 {
			t.Errorf("Refreshed = %v", result.Refreshed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("warm-up did not report")
	}
}

func TestWarmUpCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scheduler := NewWeatherScheduler(&fakeWeatherUseCase{}, &recordingPublisher{}, WeatherSchedulerConfig{Cities: []string{"北京", "上海"}})
	result := <-scheduler.WarmUp(ctx)

	if len(result.Failed) != 2 {
		t.Errorf("Failed = %v, want both cities", result.Failed)
	}
}

func TestInitWeatherScheduleTasksRejectsBadCron(t *testing.T) {
	scheduler := NewWeatherScheduler(&fakeWeatherUseCase{}, &recordingPublisher{}, WeatherSchedulerConfig{CronExpression: "not a cron"})
	if err := scheduler.InitWeatherScheduleTasks(); err == nil {
		scheduler.Stop()
		t.Fatal("expected error for invalid cron expression")
	}
}
