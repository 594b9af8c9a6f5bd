package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSubConfig defines the configuration options for Redis pub/sub
type PubSubConfig struct {
	// ChannelNamespace prefixes every channel as namespace::channel
	ChannelNamespace string
}

// NewPubSubConfig creates a new pub/sub configuration with default values
func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{}
}

// WithChannelNamespace sets the namespace for organizing channels
func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *redis.Client
	config *PubSubConfig
}

// NewPublisher creates a new publisher
func NewPublisher(client *Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{
		client: client.GetClient(),
		config: config,
	}
}

// ChannelName constructs the full channel name using ChannelNamespace::channelName format
func (p *Publisher) ChannelName(channel string) string {
	if p.config.ChannelNamespace != "" {
		return p.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// PublishJSON publishes a JSON message to a channel and returns the number of receivers
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message any) (int64, error) {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.Publish(ctx, p.ChannelName(channel), jsonData).Result()
}
