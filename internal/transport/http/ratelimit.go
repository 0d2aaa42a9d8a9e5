package http

import (
	"sync"
	"time"
)

// rateLimiter is a fixed-window message counter. A limit of zero or less
// disables limiting.
type rateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	count   int
	started time.Time
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{limit: limit, window: time.Minute}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.started) >= r.window {
		r.started = now
		r.count = 0
	}
	r.count++
	return r.count <= r.limit
}
