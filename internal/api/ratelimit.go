// Per-IP rate limiting for the interaction endpoint. A flood of synthetic
// interactions would distort the vitals and language counters, so writes
// are budgeted per window.
package api

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter allows maxRate requests per window per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	maxRate int
	window  time.Duration
}

type bucket struct {
	remaining int
	resetAt   time.Time
}

// NewRateLimiter creates a limiter allowing maxRate requests per window.
func NewRateLimiter(maxRate int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		maxRate: maxRate,
		window:  window,
	}
}

// Allow reports whether the IP may proceed, consuming one token if so.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok || now.After(b.resetAt) {
		rl.buckets[ip] = &bucket{remaining: rl.maxRate - 1, resetAt: now.Add(rl.window)}
		rl.pruneLocked(now)
		return true
	}
	if b.remaining > 0 {
		b.remaining--
		return true
	}
	return false
}

// RetryAfter returns seconds until the window resets for the IP.
func (rl *RateLimiter) RetryAfter(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		return 0
	}
	remaining := time.Until(b.resetAt)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// pruneLocked drops stale buckets. Called with the lock held.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	for ip, b := range rl.buckets {
		if now.Sub(b.resetAt) > rl.window {
			delete(rl.buckets, ip)
		}
	}
}

// RateLimitMiddleware wraps a handler with rate limiting, answering 429
// with a Retry-After header when the budget is spent.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.Allow(ip) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter(ip)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
