package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidtube/video-platform/internal/core/domain"
)

const statsTTL = 30 * time.Second

// StatsCache is the read-through cache for channel dashboard stats.
// Key format: stats:<channel_id>
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached stats, or nil on a miss.
func (c *StatsCache) Get(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	raw, err := c.client.Get(ctx, c.key(channelID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the stats snapshot (expires after statsTTL).
func (c *StatsCache) Set(ctx context.Context, channelID string, stats *domain.ChannelStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(channelID), raw, statsTTL).Err()
}

func (c *StatsCache) key(channelID string) string {
	return "stats:" + channelID
}
