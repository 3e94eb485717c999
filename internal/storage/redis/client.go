// Package redis owns the connection shared by the gallery cache.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

type Client struct {
	*goredis.Client
	addr string
}

// NewClient does not dial; the first command opens the connection.
func NewClient(addr, password string, db int) *Client {
	return &Client{
		Client: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		addr: addr,
	}
}

// Connect is NewClient followed by a ping. A client that does not answer is
// closed before the error is returned.
func Connect(ctx context.Context, addr, password string, db int) (*Client, error) {
	const op = "redis.Connect"

	c := NewClient(addr, password, db)
	if err := c.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, errors.Join(err, c.Close()))
	}

	return c, nil
}

func (c *Client) Addr() string { return c.addr }

func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", c.addr, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.Client.Close()
}
