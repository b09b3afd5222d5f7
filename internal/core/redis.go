// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/templates/review-insights/internal/config"
)

const redisPingTimeout = 5 * time.Second

var ErrRedisDisabled = errors.New("redis not configured")

// Redis backs the shared rate limiter. A nil *Redis means no redis is
// configured and every method degrades accordingly.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects when cfg.URL is set and returns nil otherwise.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.PoolTimeout = 30 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute
	// limiter calls fall back to the local bucket on timeout
	opts.ReadTimeout = 500 * time.Millisecond
	opts.WriteTimeout = 500 * time.Millisecond

	client := redis.NewClient(opts)

	r := &Redis{Client: client}
	if err := r.Ping(ctx); err != nil {
		_ = client.Close() //nolint:errcheck // cleanup on connection failure
		return nil, err
	}

	return r, nil
}

// RateLimitClient returns the client for the limiter, or nil when redis is
// not configured.
func (r *Redis) RateLimitClient() *redis.Client {
	if r == nil {
		return nil
	}
	return r.Client
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return ErrRedisDisabled
	}

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.Client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}

func (r *Redis) PoolStats() *redis.PoolStats {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.PoolStats()
}
