// Package cache stores gallery listings between requests. Values are kept as
// JSON, so a cached listing is never aliased by a caller.
package cache

import (
	"context"
	"fmt"
	"time"

	"villa_cms/internal/storage/redis"
)

const (
	DriverLocal = "local"
	DriverRedis = "redis"
	DriverNone  = "none"
)

type Cache interface {
	// Get decodes the value stored at key into dst and reports whether it was there.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// New picks an implementation by driver name. client is only used by the
// redis driver.
func New(driver string, defaultTTL time.Duration, client *redis.Client) (Cache, error) {
	const op = "cache.New"

	switch driver {
	case DriverLocal, "":
		return NewLocal(defaultTTL), nil
	case DriverRedis:
		if client == nil {
			return nil, fmt.Errorf("%s: redis driver needs a client", op)
		}
		return NewRedis(client), nil
	case DriverNone:
		return Nop{}, nil
	}

	return nil, fmt.Errorf("%s: unknown driver %q", op, driver)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Nop) Delete(context.Context, ...string) error { return nil }
