package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"drivecalc-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisGeocodeCache is a TTL-bounded cache mapping place names to
// coordinates. Geocoding results are stable for far longer than the TTL, so
// expiry exists only to bound memory and pick up upstream corrections.
//
// Keys are expected to be normalized by the caller. The cache stores no trip
// data: computed routes, tolls and costs stay request-scoped.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

const keyPrefix = "geocode:"

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

type cachedCoords struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Get fetches cached coordinates. A missing key is (zero, false, nil).
func (c *RedisGeocodeCache) Get(ctx context.Context, name string) (domain.Coordinates, bool, error) {
	if c.client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: client is nil")
	}

	raw, err := c.client.Get(ctx, keyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache %q: %w", name, err)
	}

	var v cachedCoords
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache %q: decode: %w", name, err)
	}

	return domain.Coordinates{Lon: v.Lon, Lat: v.Lat}, true, nil
}

// Put stores coordinates under the cache TTL.
func (c *RedisGeocodeCache) Put(ctx context.Context, name string, coords domain.Coordinates) error {
	if c.client == nil {
		return errors.New("geocode cache: client is nil")
	}
	if name == "" {
		return errors.New("geocode cache: empty name key")
	}

	raw, err := json.Marshal(cachedCoords{Lon: coords.Lon, Lat: coords.Lat})
	if err != nil {
		return fmt.Errorf("put geocode cache %q: encode: %w", name, err)
	}

	if err := c.client.Set(ctx, keyPrefix+name, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put geocode cache %q: %w", name, err)
	}

	return nil
}
