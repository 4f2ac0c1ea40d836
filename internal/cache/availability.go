package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ravenstudio/raven-community-api/internal/logger"
)

const availabilityTTL = 30 * time.Second

// AvailabilityCache keeps the computed slot list for a date for a few
// seconds. Misses and Redis failures just fall through to the store;
// bookings invalidate their date eagerly. A nil *AvailabilityCache is
// a valid no-op, used when REDIS_URL is unset.
type AvailabilityCache struct {
	rdb *redis.Client
	log *logger.Logger
}

func NewAvailabilityCache(redisURL string, log *logger.Logger) *AvailabilityCache {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, availability cache disabled", "error", err)
		return nil
	}
	return &AvailabilityCache{
		rdb: redis.NewClient(opts),
		log: log.With("component", "availability_cache"),
	}
}

func key(date string) string {
	return "availability:" + date
}

func (c *AvailabilityCache) Get(ctx context.Context, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(date)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache read failed", "date", date, "error", err)
		}
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date string, slots []string) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(date), raw, availabilityTTL).Err(); err != nil {
		c.log.Warn("cache write failed", "date", date, "error", err)
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(date)).Err(); err != nil {
		c.log.Warn("cache invalidate failed", "date", date, "error", err)
	}
}
