// Package cache memoizes formatted parking durations in Redis.
// Nothing in the lifecycle depends on it: a cache that is down or absent only
// means durations are formatted on every request.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/redis/go-redis/v9"
)

// DurationCache stores formatted duration strings by key.
type DurationCache interface {
	// Get returns the cached value and true, or "" and false on a miss.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

const keyPrefix = "parking:duration:"

type lookup struct {
	value string
	found bool
}

// RedisDurationCache is a DurationCache backed by Redis. Calls go through a
// circuit breaker, so an unreachable Redis costs one fast error per request
// instead of one dial timeout.
type RedisDurationCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker circuitbreaker.CircuitBreaker[lookup]
}

// NewRedisDurationCache wraps client. Entries expire after ttl.
func NewRedisDurationCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisDurationCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisDurationCache{
		client: client,
		ttl:    ttl,
		breaker: circuitbreaker.New[lookup](circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    30 * time.Second,
			Timeout:     15 * time.Second,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("duration cache circuit breaker state change",
					"from", from.String(),
					"to", to.String())
			},
		}),
	}
}

// Get reads key. A missing key is a miss, not an error.
func (c *RedisDurationCache) Get(ctx context.Context, key string) (string, bool, error) {
	res, err := c.breaker.Execute(ctx, func(ctx context.Context) (lookup, error) {
		v, err := c.client.Get(ctx, keyPrefix+key).Result()
		if errors.Is(err, redis.Nil) {
			return lookup{}, nil
		}
		if err != nil {
			return lookup{}, err
		}
		return lookup{value: v, found: true}, nil
	})
	if err != nil {
		return "", false, fmt.Errorf("cache.RedisDurationCache.Get: %w", err)
	}
	return res.value, res.found, nil
}

// Set writes key with the configured TTL.
func (c *RedisDurationCache) Set(ctx context.Context, key, value string) error {
	_, err := c.breaker.Execute(ctx, func(ctx context.Context) (lookup, error) {
		return lookup{}, c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache.RedisDurationCache.Set: %w", err)
	}
	return nil
}
