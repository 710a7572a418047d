package creditbureau

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "loanflow:creditscore:"

// ScoreCache fronts a Scorer with a Redis cache. Only successful lookups are
// cached; failures always go back to the bureau so recovery is observed as
// soon as it happens. Cache outages are fail-open: a Redis error degrades to
// a direct bureau call.
type ScoreCache struct {
	next   Scorer
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// CacheOption configures the ScoreCache.
type CacheOption func(*ScoreCache)

// WithCacheLogger sets a logger for cache diagnostics.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *ScoreCache) { c.logger = logger }
}

// NewScoreCache wraps next with a Redis-backed cache.
func NewScoreCache(next Scorer, client *redis.Client, ttl time.Duration, opts ...CacheOption) *ScoreCache {
	c := &ScoreCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score returns a cached score when present, delegating to the wrapped
// Scorer otherwise.
func (c *ScoreCache) Score(ctx context.Context, phone string) (ScoreResult, error) {
	key := cacheKeyPrefix + phone

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if score, convErr := strconv.Atoi(cached); convErr == nil {
			return ScoreResult{Success: true, Score: score}, nil
		}
	} else if err != redis.Nil && c.logger != nil {
		c.logger.WarnContext(ctx, "score cache read failed", "error", err)
	}

	result, err := c.next.Score(ctx, phone)
	if err != nil {
		return result, err
	}

	if result.Success {
		if err := c.client.Set(ctx, key, strconv.Itoa(result.Score), c.ttl).Err(); err != nil && c.logger != nil {
			c.logger.WarnContext(ctx, "score cache write failed", "error", err)
		}
	}

	return result, nil
}
