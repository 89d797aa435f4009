// Package ratelimit implements the fixed-window request limiter guarding
// the lead-intake endpoints. State is process-local: behind a load balancer
// each instance counts independently, so the effective limit is
// max × instances. That is a documented property, not a bug to fix here.
package ratelimit

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const sweepInterval = 5 * time.Minute

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter is a fixed-window counter keyed by client fingerprint.
// Construct one per endpoint policy and Close it at shutdown.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry

	max    int
	window time.Duration

	timeProvider func() time.Time
	stop         chan struct{}
}

// Opts carries optional overrides, mainly for tests.
type Opts struct {
	TimeProvider  func() time.Time
	SweepInterval time.Duration
}

// Result is the outcome of a single Check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter int // seconds until the window resets; set when denied
	Reset      time.Time
}

// New creates a limiter allowing max requests per window and starts its
// background sweeper.
func New(max int, window time.Duration, opts *Opts) *Limiter {
	l := &Limiter{
		entries:      make(map[string]*entry),
		max:          max,
		window:       window,
		timeProvider: time.Now,
		stop:         make(chan struct{}),
	}
	interval := sweepInterval
	if opts != nil {
		if opts.TimeProvider != nil {
			l.timeProvider = opts.TimeProvider
		}
		if opts.SweepInterval > 0 {
			interval = opts.SweepInterval
		}
	}
	go l.sweep(interval)
	return l
}

// Check records a request for key and reports whether it is allowed.
func (l *Limiter) Check(key string) Result {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || !now.Before(e.resetTime) {
		// First request, or the stored window already elapsed.
		l.entries[key] = &entry{count: 1, resetTime: now.Add(l.window)}
		return Result{
			Allowed:   true,
			Limit:     l.max,
			Remaining: l.max - 1,
			Reset:     now.Add(l.window),
		}
	}

	if e.count >= l.max {
		retry := int((e.resetTime.Sub(now) + time.Second - 1) / time.Second)
		return Result{
			Allowed:    false,
			Limit:      l.max,
			Remaining:  0,
			RetryAfter: retry,
			Reset:      e.resetTime,
		}
	}

	e.count++
	return Result{
		Allowed:   true,
		Limit:     l.max,
		Remaining: l.max - e.count,
		Reset:     e.resetTime,
	}
}

// Close stops the background sweeper.
func (l *Limiter) Close() {
	close(l.stop)
}

// sweep drops expired windows so the map stays bounded. Expired entries are
// also superseded on next access, so this is housekeeping only.
func (l *Limiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := l.timeProvider()
			l.mu.Lock()
			for key, e := range l.entries {
				if !now.Before(e.resetTime) {
					delete(l.entries, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// size reports the number of tracked windows. Test hook.
func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Middleware applies the limiter to an endpoint, answering 429 with
// Retry-After when a client exceeds its window.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := l.Check(ClientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

			if !res.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(res.RetryAfter))
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				if _, err := w.Write([]byte(`{"error":"Too many requests. Please try again later.","retryAfter":` + strconv.Itoa(res.RetryAfter) + `}`)); err != nil {
					log.Printf("Warning: rate limit response write failed: %v", err)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey derives the limiter key from the best-available client IP plus
// the user agent. Clients behind one proxy sharing a user agent collide
// into one bucket; this is a fingerprint, not an identity.
func ClientKey(r *http.Request) string {
	ip := "unknown"
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
	} else if real := r.Header.Get("X-Real-IP"); real != "" {
		ip = real
	}
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		ua = "unknown"
	}
	return ip + "|" + ua
}
