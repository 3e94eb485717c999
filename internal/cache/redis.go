package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"villa_cms/internal/metrics"
	"villa_cms/internal/storage/redis"
)

// Redis shares entries between every process pointed at the same server.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	const op = "cache.Redis.Get"

	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		metrics.ObserveCache(DriverRedis, "miss")
		return false, nil
	}
	if err != nil {
		metrics.ObserveCache(DriverRedis, "error")
		return false, fmt.Errorf("%s: %w", op, err)
	}
	metrics.ObserveCache(DriverRedis, "hit")

	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	const op = "cache.Redis.Set"

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		metrics.ObserveCache(DriverRedis, "error")
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.ObserveCache(DriverRedis, "set")

	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	const op = "cache.Redis.Delete"

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		metrics.ObserveCache(DriverRedis, "error")
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.ObserveCache(DriverRedis, "del")

	return nil
}
