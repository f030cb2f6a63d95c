package store

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jchow97/BasketballPredictor/internal/metrics"
)

// noSpreadSentinel marks a game with no recorded line. Negative results are
// cached too: most historical games simply never had a line, and re-querying
// them every backtest pass defeats the cache.
const noSpreadSentinel = "none"

// DefaultSpreadTTL is how long cached spreads live. Historical lines never
// change, so the TTL only bounds cache growth.
const DefaultSpreadTTL = 24 * time.Hour

// SpreadCache decorates a Store with a Redis cache for market-spread lookups.
// Cache failures degrade to the underlying store, never to an error.
type SpreadCache struct {
	Store
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewSpreadCache wraps inner with a Redis spread cache.
func NewSpreadCache(inner Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *SpreadCache {
	if ttl <= 0 {
		ttl = DefaultSpreadTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SpreadCache{
		Store:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// WithMetrics attaches a metrics collector for hit and miss counts.
func (c *SpreadCache) WithMetrics(m *metrics.Metrics) *SpreadCache {
	c.metrics = m
	return c
}

// MarketSpread consults the cache before the underlying store.
func (c *SpreadCache) MarketSpread(ctx context.Context, gameCode string) (*float64, error) {
	key := spreadKey(gameCode)

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if spread, ok := decodeSpread(val); ok {
			if c.metrics != nil {
				c.metrics.SpreadCacheHits.Inc()
			}
			return spread, nil
		}
		c.logger.Warn("spread cache entry corrupt, falling through", "key", key, "value", val)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("spread cache read failed", "key", key, "error", err)
	}

	if c.metrics != nil {
		c.metrics.SpreadCacheMisses.Inc()
	}
	spread, err := c.Store.MarketSpread(ctx, gameCode)
	if err != nil {
		return nil, err
	}

	if err := c.client.Set(ctx, key, encodeSpread(spread), c.ttl).Err(); err != nil {
		c.logger.Warn("spread cache write failed", "key", key, "error", err)
	}
	return spread, nil
}

func spreadKey(gameCode string) string {
	return "spread:" + gameCode
}

func encodeSpread(spread *float64) string {
	if spread == nil {
		return noSpreadSentinel
	}
	return strconv.FormatFloat(*spread, 'f', -1, 64)
}

// decodeSpread parses a cached value; ok is false for corrupt entries.
func decodeSpread(val string) (*float64, bool) {
	if val == noSpreadSentinel {
		return nil, true
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}
