package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"villa_cms/internal/metrics"
)

// Local keeps entries in process memory.
type Local struct {
	c *gocache.Cache
}

func NewLocal(defaultTTL time.Duration) *Local {
	return &Local{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (l *Local) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := l.c.Get(key)
	if !ok {
		metrics.ObserveCache(DriverLocal, "miss")
		return false, nil
	}
	metrics.ObserveCache(DriverLocal, "hit")

	if err := json.Unmarshal(v.([]byte), dst); err != nil {
		return false, fmt.Errorf("cache.Local.Get: %w", err)
	}

	return true, nil
}

func (l *Local) Set(_ context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache.Local.Set: %w", err)
	}
	metrics.ObserveCache(DriverLocal, "set")

	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	l.c.Set(key, b, ttl)

	return nil
}

func (l *Local) Delete(_ context.Context, keys ...string) error {
	metrics.ObserveCache(DriverLocal, "del")
	for _, key := range keys {
		l.c.Delete(key)
	}

	return nil
}
