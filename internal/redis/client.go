// Package redis wraps the Redis connection used as the token revocation
// store. JWTs are stateless; logout works by parking the token here
// until its natural expiry, and the auth middleware checks membership.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// RevokeToken blacklists a token for ttl. After ttl the JWT has expired
// on its own and the entry is no longer needed.
func (c *Client) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, "revoked:"+token, 1, ttl).Err()
}

func (c *Client) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	n, err := c.rdb.Exists(ctx, "revoked:"+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
