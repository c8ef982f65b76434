package zone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotKey is where the active-zone snapshot lives in redis.
const snapshotKey = "delivery:zones:active"

// Cache holds the serialized active-zone snapshot in redis so request
// paths do not hit postgres on every resolution. A snapshot is only
// ever replaced whole; partial updates would break the stable-order
// guarantee.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{Client: client, TTL: ttl}
}

// Get reads the cached snapshot. The second return value is false on
// a cache miss.
func (c *Cache) Get(ctx context.Context) ([]Zone, bool, error) {
	data, err := c.Client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading zone snapshot: %w", err)
	}

	var zones []Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, false, fmt.Errorf("decoding zone snapshot: %w", err)
	}

	return zones, true, nil
}

// Set replaces the cached snapshot.
func (c *Cache) Set(ctx context.Context, zones []Zone) error {
	data, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("encoding zone snapshot: %w", err)
	}

	if err := c.Client.Set(ctx, snapshotKey, data, c.TTL).Err(); err != nil {
		return fmt.Errorf("writing zone snapshot: %w", err)
	}

	return nil
}
