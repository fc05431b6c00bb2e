// Package peerlimit throttles requests per remote address before they reach
// any service. It complements the per-identity limits of the sign-in flows.
package peerlimit

import (
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTTL is how long an idle peer's bucket is kept.
const DefaultTTL = 10 * time.Minute

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter holds one token bucket per peer.
type Limiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	entries map[string]*bucket

	// idle buckets are swept at most once per ttl
	nextSweep time.Time
	now       func() time.Time
}

// New returns a Limiter allowing perSecond requests with the given burst.
// A non-positive perSecond disables limiting.
func New(perSecond float64, burst int, ttl time.Duration) *Limiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Limiter{
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		entries: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow reports whether one more request from peer may proceed.
func (l *Limiter) Allow(peer string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.entries[peer]
	if b == nil {
		b = &bucket{lim: rate.NewLimiter(l.limit, l.burst)}
		l.entries[peer] = b
	}
	b.lastSeen = now

	if !now.Before(l.nextSweep) {
		l.sweep(now)
	}
	return b.lim.AllowN(now, 1)
}

func (l *Limiter) sweep(now time.Time) {
	for k, v := range l.entries {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.entries, k)
		}
	}
	l.nextSweep = now.Add(l.ttl)
}

// Size is the number of tracked peers.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Host strips the port from addr when there is one.
func Host(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err == nil && host != "" {
		return host
	}
	return addr
}
