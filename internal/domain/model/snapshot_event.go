package model

import (
	"time"

	"github.com/Ukiyograin/YourWeather/internal/domain/entity"
)

const SnapshotReplacedEventType = "snapshot.replaced"

// SnapshotReplacedEvent announces that a freshly fetched snapshot supersedes the previous one for City.
type SnapshotReplacedEvent struct {
	EventID    string                 `json:"eventId"`
	Type       string                 `json:"type"`
	RunID      string                 `json:"runId"`
	City       string                 `json:"city"`
	Snapshot   entity.WeatherSnapshot `json:"snapshot"`
	OccurredAt time.Time              `json:"occurredAt"`
}
