package event

import (
	"context"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Ukiyograin/YourWeather/internal/domain/model"
	"github.com/Ukiyograin/YourWeather/pkg/log"
)

// LogPublisher writes snapshot events to the application log. Used when no broker is configured.
type LogPublisher struct {
	published atomic.Int64
}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) PublishSnapshotReplaced(ctx context.Context, event model.SnapshotReplacedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Snapshot replaced",
		zap.String("event_id", event.EventID),
		zap.String("run_id", event.RunID),
		zap.String("city", event.City),
		zap.Float64("temperature", event.Snapshot.Current.Temperature),
		zap.String("condition", event.Snapshot.Current.Condition))
	p.published.Add(1)
	return nil
}

// Published returns the number of events written so far.
func (p *LogPublisher) Published() int64 {
	return p.published.Load()
}

func (p *LogPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"transport": "log",
			"published": strconv.FormatInt(p.published.Load(), 10),
		},
	}
}
