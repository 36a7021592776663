package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrStatsNotCached signals a cache miss.
var ErrStatsNotCached = errors.New("task stats not cached")

// StatsCache caches per-user task counts. Implementations must treat a miss
// as ErrStatsNotCached, not as a failure.
type StatsCache interface {
	Get(ctx context.Context, userID int64) (*Stats, error)
	Set(ctx context.Context, userID int64, stats *Stats) error
	Invalidate(ctx context.Context, userID int64) error
}

const statsTTL = 30 * time.Second

// RedisStatsCache stores task stats in Redis with a short TTL. Entries are
// invalidated on every task write, so the TTL only bounds staleness after
// out-of-band changes.
type RedisStatsCache struct {
	client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{client: client}
}

func getStatsKey(userID int64) string {
	return fmt.Sprintf("task_stats:%d", userID)
}

func (c *RedisStatsCache) Get(ctx context.Context, userID int64) (*Stats, error) {
	data, err := c.client.Get(ctx, getStatsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatsNotCached
		}
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}

	stats := new(Stats)
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("failed to decode task stats: %w", err)
	}

	return stats, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, userID int64, stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode task stats: %w", err)
	}

	if err := c.client.Set(ctx, getStatsKey(userID), data, statsTTL).Err(); err != nil {
		return fmt.Errorf("failed to store task stats: %w", err)
	}

	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, getStatsKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate task stats: %w", err)
	}
	return nil
}
