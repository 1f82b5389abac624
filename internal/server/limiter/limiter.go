// Package limiter implements fixed-window request rate limiting over a shared
// counter store.
package limiter

import (
	"context"
	"time"
)

// Counter atomically increments key and makes sure it expires after window.
type Counter interface {
	IncrWithExpire(ctx context.Context, key string, window time.Duration) (int64, error)
}

// Result describes one rate limit decision.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter allows up to Limit requests per key in each window.
type Limiter struct {
	counter Counter
	limit   int
	window  time.Duration
	prefix  string
}

func New(counter Counter, limit int, window time.Duration) *Limiter {
	return &Limiter{counter: counter, limit: limit, window: window, prefix: "ratelimit:"}
}

// Allow counts one request for key. Counter errors are returned to the caller,
// which decides whether to fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	count, err := l.counter.IncrWithExpire(ctx, l.prefix+key, l.window)
	if err != nil {
		return Result{Allowed: true, Limit: l.limit, Remaining: l.limit}, err
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	res := Result{
		Allowed:   int(count) <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
	}
	if !res.Allowed {
		res.RetryAfter = l.window
	}

	return res, nil
}
