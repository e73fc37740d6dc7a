package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"industrial-land-api/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

const cacheKeyPrefix = "geocode:"

// Cache stores geocoding results between runs.
type Cache interface {
	Get(ctx context.Context, key string) (models.GeoPoint, bool, error)
	Set(ctx context.Context, key string, point models.GeoPoint, ttl time.Duration) error
}

// RedisCache is a Cache backed by redis.
type RedisCache struct {
	rc *redis.Client
}

// OpenRedis opens a redis client, or returns nil when addr is empty.
func OpenRedis(addr, password string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// NewRedisCache wraps rc.
func NewRedisCache(rc *redis.Client) *RedisCache {
	return &RedisCache{rc: rc}
}

func (c *RedisCache) Get(ctx context.Context, key string) (models.GeoPoint, bool, error) {
	var point models.GeoPoint
	s, err := c.rc.Get(ctx, cacheKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return point, false, nil
	}
	if err != nil {
		return point, false, eris.Wrap(err, "geocode: cache get")
	}
	if err := json.Unmarshal([]byte(s), &point); err != nil {
		return point, false, eris.Wrap(err, "geocode: cache decode")
	}
	return point, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, point models.GeoPoint, ttl time.Duration) error {
	b, err := json.Marshal(point)
	if err != nil {
		return eris.Wrap(err, "geocode: cache encode")
	}
	if err := c.rc.Set(ctx, cacheKeyPrefix+key, string(b), ttl).Err(); err != nil {
		return eris.Wrap(err, "geocode: cache set")
	}
	return nil
}
