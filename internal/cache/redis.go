package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs by game state. Live box scores go stale within a poll cycle;
// final ones only change if the league issues a stat correction.
const (
	LiveTTL  = 30 * time.Second
	FinalTTL = 6 * time.Hour
)

// ErrMiss is returned when a key is absent.
var ErrMiss = redis.Nil

// RedisCache stores serialized schedule and box-score snapshots.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client for stream publishing.
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify the connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// SetJSON marshals value and stores it under key with the given TTL.
func (rc *RedisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, ttl).Err()
}

// GetJSON fetches key and unmarshals it into dest. Returns ErrMiss when
// the key is absent or expired.
func (rc *RedisCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes keys.
func (rc *RedisCache) Delete(ctx context.Context, keys ...string) error {
	return rc.client.Del(ctx, keys...).Err()
}

// BoxScoreKey names the cache entry for one game's box score.
func BoxScoreKey(gameID string) string {
	return "iris:boxscore:" + gameID
}

// ScheduleKey names the cache entry for one date's schedule.
func ScheduleKey(date string) string {
	return "iris:schedule:" + date
}
