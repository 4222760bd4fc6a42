// Package ratelimit implements a keyed token bucket with fixed-window
// refill: a bucket regains its full allowance once the window has
// elapsed since the last refill. There is no gradual leak.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of a single Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	// Reset is the time until the bucket refills. Callers denied a token
	// may retry after this long.
	Reset time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	window     time.Duration
}

// Limiter tracks one bucket per logical key. Buckets are created lazily
// on first use and evicted by a janitor once idle for longer than their
// window, which keeps the map from growing without bound.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	stopCh  chan struct{}
}

func New() *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go l.cleanup()

	return l
}

// Allow consumes one token from the bucket identified by key, creating
// the bucket with maxTokens on first use. Check and decrement happen
// under one lock so racing callers cannot both take the last token.
func (l *Limiter) Allow(key string, maxTokens int, window time.Duration) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: maxTokens, lastRefill: now}
		l.buckets[key] = b
	}
	b.window = window

	if now.Sub(b.lastRefill) > window {
		b.tokens = maxTokens
		b.lastRefill = now
	}

	reset := window - now.Sub(b.lastRefill)
	if b.tokens <= 0 {
		return Result{Allowed: false, Remaining: 0, Reset: reset}
	}

	b.tokens--
	return Result{Allowed: true, Remaining: b.tokens, Reset: reset}
}

func (l *Limiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := l.now()
			l.mu.Lock()
			for key, b := range l.buckets {
				// An expired bucket would refill in full on next use anyway.
				if now.Sub(b.lastRefill) > b.window {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stopCh:
			return
		}
	}
}

// Stop terminates the janitor goroutine.
func (l *Limiter) Stop() {
	close(l.stopCh)
}
