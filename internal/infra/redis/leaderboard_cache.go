package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// LeaderboardCache is a read-through Redis cache in front of the aggregator.
// Snapshots are stored as JSON under leaderboard:{period} with a short TTL so
// hot periods do not re-scan rounds on every request. Cache failures fall
// back to the source; a stale-by-TTL snapshot is acceptable for a scoreboard.
type LeaderboardCache struct {
	client *redis.Client
	source app.LeaderboardSource
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewLeaderboardCache(client *redis.Client, source app.LeaderboardSource, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		client: client,
		source: source,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *LeaderboardCache) Get(ctx context.Context, period string) ([]domain.LeaderboardEntry, error) {
	key := c.key(period)

	if entries, ok := c.lookup(ctx, key); ok {
		return entries, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Re-check in case another goroutine filled the key.
		if entries, ok := c.lookup(ctx, key); ok {
			return entries, nil
		}

		entries, err := c.source.Get(ctx, period)
		if err != nil {
			return nil, err
		}

		if raw, err := json.Marshal(entries); err == nil {
			_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.LeaderboardEntry), nil
}

// Invalidate drops the cached snapshot for every period. Called after a
// submission so freshly posted scores show up without waiting out the TTL.
func (c *LeaderboardCache) Invalidate(ctx context.Context) {
	for _, period := range []string{"daily", "weekly", "alltime"} {
		_ = c.client.Del(ctx, c.key(period)).Err()
	}
}

func (c *LeaderboardCache) lookup(ctx context.Context, key string) ([]domain.LeaderboardEntry, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) key(period string) string {
	return "leaderboard:" + period
}

func (c *LeaderboardCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
