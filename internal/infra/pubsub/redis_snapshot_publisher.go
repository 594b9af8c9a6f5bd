package pubsub

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ukiyograin/YourWeather/internal/domain/gateway/event"
	"github.com/Ukiyograin/YourWeather/internal/domain/model"
	"github.com/Ukiyograin/YourWeather/pkg/log"
	"github.com/Ukiyograin/YourWeather/pkg/redis"
)

// RedisSnapshotPublisher adapts pkg/redis to the domain event gateways
type RedisSnapshotPublisher struct {
	publisher *redis.Publisher
	health    *redis.HealthChecker
	channel   string
}

var (
	_ event.Publisher     = (*RedisSnapshotPublisher)(nil)
	_ event.HealthGateway = (*RedisSnapshotPublisher)(nil)
)

// NewRedisSnapshotPublisher publishes snapshot events as JSON on namespace::channel
func NewRedisSnapshotPublisher(client *redis.Client, namespace string, channel string) *RedisSnapshotPublisher {
	return &RedisSnapshotPublisher{
		publisher: redis.NewPublisher(client, redis.NewPubSubConfig().WithChannelNamespace(namespace)),
		health:    redis.NewHealthChecker(client),
		channel:   channel,
	}
}

func (adapter *RedisSnapshotPublisher) PublishSnapshotReplaced(ctx context.Context, evt model.SnapshotReplacedEvent) error {
	receivers, err := adapter.publisher.PublishJSON(ctx, adapter.channel, evt)
	if err != nil {
		return fmt.Errorf("failed to publish snapshot event: %w", err)
	}

	log.Debug("Snapshot event published",
		zap.String("channel", adapter.publisher.ChannelName(adapter.channel)),
		zap.String("event_id", evt.EventID),
		zap.Int64("receivers", receivers))
	return nil
}

func (adapter *RedisSnapshotPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	check := adapter.health.HealthCheck(ctx)

	details := make(map[string]string, len(check.Details)+2)
	for key, value := range check.Details {
		details[key] = value
	}
	details["transport"] = "redis"
	details["channel"] = adapter.publisher.ChannelName(adapter.channel)

	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: details,
	}
}
