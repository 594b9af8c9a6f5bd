package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/event"
	"github.com/Ukiyograin/YourWeather/internal/domain/model"
	"github.com/Ukiyograin/YourWeather/internal/domain/usecase/weather"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/msg"
)

// WeatherSchedulerConfig holds configuration for the weather scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	Cities         []string
	ForecastDays   int
	// CityTimeout bounds each city's fetch and publish.
	CityTimeout time.Duration
}

// RefreshResult summarizes one refresh run
type RefreshResult struct {
	RunID     string
	Refreshed []string
	Failed    map[string]error
}

// WeatherScheduler re-fetches the configured cities and publishes a SnapshotReplacedEvent per city
type WeatherScheduler struct {
	cron      *cron.Cron
	useCase   weather.UseCase
	publisher event.Publisher
	config    WeatherSchedulerConfig
	now       func() time.Time
}

// NewWeatherScheduler creates a new weather scheduler
func NewWeatherScheduler(useCase weather.UseCase, publisher event.Publisher, config WeatherSchedulerConfig) *WeatherScheduler {
	if config.CityTimeout <= 0 {
		config.CityTimeout = 30 * time.Second
	}

	return &WeatherScheduler{
		cron:      cron.New(),
		useCase:   useCase,
		publisher: publisher,
		config:    config,
		now:       time.Now,
	}
}

// InitWeatherScheduleTasks registers the refresh job and starts the cron
func (s *WeatherScheduler) InitWeatherScheduleTasks() error {
	_, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Infof("Snapshot refresh scheduled with cron expression: %s", s.config.CronExpression)
	return nil
}

// ExecuteScheduledTask runs one refresh from the cron
func (s *WeatherScheduler) ExecuteScheduledTask() {
	s.RefreshAll(context.Background())
}

// WarmUp runs one refresh in the background. The channel yields its result and closes.
func (s *WeatherScheduler) WarmUp(ctx context.Context) <-chan RefreshResult {
	results := make(chan RefreshResult, 1)
	go func() {
		defer close(results)
		results <- s.RefreshAll(ctx)
	}()
	return results
}

// RefreshAll fetches every configured city in order and publishes each new snapshot
func (s *WeatherScheduler) RefreshAll(ctx context.Context) RefreshResult {
	result := RefreshResult{
		RunID:     uuid.New().String(),
		Refreshed: []string{},
		Failed:    map[string]error{},
	}

	log.Info(msg.GetMessage("refresh.start", result.RunID, len(s.config.Cities)), zap.String("run_id", result.RunID))

	for _, city := range s.config.Cities {
		if err := ctx.Err(); err != nil {
			result.Failed[city] = err
			continue
		}

		if err := s.refreshCity(ctx, result.RunID, city); err != nil {
			result.Failed[city] = err
			log.Error(msg.GetMessage("refresh.city-failed", result.RunID, city, err),
				zap.String("run_id", result.RunID), zap.String("city", city), zap.Error(err))
			continue
		}
		result.Refreshed = append(result.Refreshed, city)
	}

	log.Info(msg.GetMessage("refresh.end", result.RunID, len(result.Refreshed), len(result.Failed)),
		zap.String("run_id", result.RunID))
	return result
}

func (s *WeatherScheduler) refreshCity(ctx context.Context, runID string, city string) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.CityTimeout)
	defer cancel()

	snapshot, err := s.useCase.ForecastForPlace(ctx, city, "", s.config.ForecastDays)
	if err != nil {
		return err
	}

	evt := model.SnapshotReplacedEvent{
		EventID:    uuid.New().String(),
		Type:       model.SnapshotReplacedEventType,
		RunID:      runID,
		City:       city,
		Snapshot:   *snapshot,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishSnapshotReplaced(ctx, evt); err != nil {
		return err
	}

	log.Info(msg.GetMessage("refresh.published", city, evt.EventID), zap.String("run_id", runID))
	return nil
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
