package client

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter paces probe requests so a run does not trip the target's
// own request throttling.
type RateLimiter struct {
	limiter  *rate.Limiter
	minDelay time.Duration
	maxDelay time.Duration
}

// NewRateLimiter allows requestsPerSecond requests (unlimited when <= 0)
// and sleeps a random delay in [minDelay, maxDelay] after each token.
func NewRateLimiter(requestsPerSecond int, minDelay, maxDelay time.Duration) *RateLimiter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &RateLimiter{
		limiter:  rate.NewLimiter(limit, 1),
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Wait blocks until a request can be made or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := rl.limiter.Wait(ctx); err != nil {
		return err
	}

	delay := rl.minDelay
	if spread := rl.maxDelay - rl.minDelay; spread > 0 {
		delay += time.Duration(rand.Int64N(int64(spread)))
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
