package event

import (
	"context"

	"github.com/Ukiyograin/YourWeather/internal/domain/model"
)

// Publisher delivers snapshot events to interested consumers.
type Publisher interface {
	PublishSnapshotReplaced(ctx context.Context, event model.SnapshotReplacedEvent) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
