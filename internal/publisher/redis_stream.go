package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names consumed by downstream localization clients.
const (
	LiveStream  = "games.live.basketball_nba"
	FinalStream = "games.final.basketball_nba"
)

// StreamPublisher writes game events to Redis streams. Payloads are
// JSON-encoded under a single "data" field so consumers decode one value
// regardless of event shape.
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher wraps an existing Redis client.
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{client: client}
}

// PublishLiveUpdate announces an in-progress game's latest snapshot.
func (p *StreamPublisher) PublishLiveUpdate(ctx context.Context, payload interface{}) error {
	return p.publish(ctx, LiveStream, payload)
}

// PublishFinal announces a completed game. The scheduler guarantees this
// fires once per game.
func (p *StreamPublisher) PublishFinal(ctx context.Context, payload interface{}) error {
	return p.publish(ctx, FinalStream, payload)
}

func (p *StreamPublisher) publish(ctx context.Context, stream string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
