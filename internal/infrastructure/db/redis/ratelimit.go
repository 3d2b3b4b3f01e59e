package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginAttemptPrefix = "login_attempt:"

// LoginLimiter admits one login attempt per key per window, shared
// across instances through Redis.
type LoginLimiter struct {
	client *redis.Client
	window time.Duration
}

func NewLoginLimiter(client *redis.Client, window time.Duration) *LoginLimiter {
	if window <= 0 {
		window = 5 * time.Second
	}
	return &LoginLimiter{client: client, window: window}
}

// Allow reports whether the attempt may proceed. The first attempt for a
// key claims the slot; further attempts are rejected until the key expires.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ok, err := l.client.SetNX(ctx, loginAttemptPrefix+key, "1", l.window).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter: %w", err)
	}
	return ok, nil
}
