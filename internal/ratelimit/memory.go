// Package ratelimit provides an in-process fallback login limiter for
// deployments that run without Redis.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter admits one attempt per key per window. State lives in
// process memory, so limits are not shared across instances.
type MemoryLimiter struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
	now    func() time.Time
}

func NewMemoryLimiter(window time.Duration) *MemoryLimiter {
	if window <= 0 {
		window = 5 * time.Second
	}
	return &MemoryLimiter{
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, t := range l.seen {
		if now.Sub(t) >= l.window {
			delete(l.seen, k)
		}
	}

	if t, ok := l.seen[key]; ok && now.Sub(t) < l.window {
		return false, nil
	}
	l.seen[key] = now
	return true, nil
}
