package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// Broadcaster mirrors session events to Redis pub/sub, one channel per session.
type Broadcaster struct {
	logger *slog.Logger
	client *redis.Client
	prefix string
}

func New(logger *slog.Logger, client *redis.Client, prefix string) *Broadcaster {
	return &Broadcaster{
		logger: logger.With("component", "redis_broadcaster"),
		client: client,
		prefix: prefix,
	}
}

// Connect dials addr and checks the server answers.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Channel returns the channel events of sessionID are published to.
func (that *Broadcaster) Channel(sessionID string) string {
	return that.prefix + ":" + sessionID
}

// Broadcast publishes event as JSON.
func (that *Broadcaster) Broadcast(ctx context.Context, sessionID string, event entity.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	receivers, err := that.client.Publish(ctx, that.Channel(sessionID), data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	that.logger.DebugContext(ctx, "event published", "session", sessionID, "type", event.Type, "receivers", receivers)

	return nil
}

func (that *Broadcaster) Close() error {
	if err := that.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	return nil
}
