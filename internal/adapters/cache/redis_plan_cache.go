package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed cache for serialized planning results. Planning a large
// scenario is the expensive operation in this system, so responses are cached
// keyed by a fingerprint of the scenario they were computed from; any scenario
// change produces a new key and the stale entry simply expires.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Fetch a cached result. A missing key is a miss, not an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	value, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("plan cache: get %q: %w", key, err)
	}

	return value, true, nil
}

// Store a result under the cache TTL.
func (c *RedisPlanCache) Put(ctx context.Context, key string, value []byte) error {
	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}

	if err := c.Client.Set(ctx, key, value, c.TTL).Err(); err != nil {
		return fmt.Errorf("plan cache: set %q: %w", key, err)
	}

	return nil
}
