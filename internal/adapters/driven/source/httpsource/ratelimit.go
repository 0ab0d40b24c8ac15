package httpsource

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// defaultBackoff applies when a 429 response carries no usable Retry-After.
const defaultBackoff = 30 * time.Second

// RateLimiter paces requests to a document host.
// It combines a token bucket with a backoff window set after 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerSecond sustained
// requests. A non-positive rate disables the token bucket; 429 backoff
// still applies.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may be made or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if wait := time.Until(retryAt); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// Backoff holds further requests for retryAfter.
func (r *RateLimiter) Backoff(retryAfter time.Duration) {
	if retryAfter <= 0 {
		retryAfter = defaultBackoff
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if until := time.Now().Add(retryAfter); until.After(r.retryAt) {
		r.retryAt = until
	}
}
