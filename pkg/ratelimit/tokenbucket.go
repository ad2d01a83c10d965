package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

// Result is the outcome of a single limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	now       time.Time
}

// RetryAfter is how long to wait before the next request is allowed.
// It is zero for an allowed request.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, r.ResetAt.Sub(r.now))
}

// Limiter decides whether the request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

type bucket struct {
	tokens float64
	last   time.Time
}

// TokenBucket is a Limiter keeping one bucket per key in memory.
type TokenBucket struct {
	rate     int
	interval time.Duration
	burst    int
	now      func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// TokenBucketOption configures a TokenBucket.
type TokenBucketOption func(*TokenBucket)

// WithBurst sets the bucket capacity. Values below the rate are raised to it.
func WithBurst(burst int) TokenBucketOption {
	return func(tb *TokenBucket) {
		if burst > 0 {
			tb.burst = burst
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) TokenBucketOption {
	return func(tb *TokenBucket) {
		if now != nil {
			tb.now = now
		}
	}
}

// NewTokenBucket allows rate requests per interval per key.
func NewTokenBucket(rate int, interval time.Duration, opts ...TokenBucketOption) (*TokenBucket, error) {
	if rate <= 0 {
		return nil, ErrInvalidLimit
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	tb := &TokenBucket{
		rate:     rate,
		interval: interval,
		burst:    rate,
		now:      time.Now,
		buckets:  make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(tb)
	}
	tb.burst = max(tb.burst, tb.rate)
	return tb, nil
}

func (tb *TokenBucket) perToken() float64 {
	return float64(tb.interval) / float64(tb.rate)
}

// Allow consumes one token for key when one is available.
func (tb *TokenBucket) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := tb.now()
	perToken := tb.perToken()

	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(tb.burst), last: now}
		tb.buckets[key] = b
	}
	if elapsed := now.Sub(b.last); elapsed > 0 {
		b.tokens = math.Min(float64(tb.burst), b.tokens+float64(elapsed)/perToken)
		b.last = now
	}

	res := &Result{Limit: tb.burst, now: now}
	if b.tokens >= 1 {
		b.tokens--
		res.Allowed = true
	}
	res.Remaining = int(b.tokens)

	// Allowed: when the bucket is full again. Throttled: when one token exists.
	missing := float64(tb.burst) - b.tokens
	if !res.Allowed {
		missing = 1 - b.tokens
	}
	res.ResetAt = now.Add(time.Duration(math.Ceil(missing * perToken)))
	return res, nil
}

// Prune drops buckets that have been full for at least idle and reports how
// many were removed.
func (tb *TokenBucket) Prune(idle time.Duration) int {
	now := tb.now()
	perToken := tb.perToken()

	tb.mu.Lock()
	defer tb.mu.Unlock()

	removed := 0
	for key, b := range tb.buckets {
		fullAt := b.last.Add(time.Duration((float64(tb.burst) - b.tokens) * perToken))
		if now.Sub(fullAt) >= idle {
			delete(tb.buckets, key)
			removed++
		}
	}
	return removed
}

// StartPruning runs Prune every interval until ctx is done.
func (tb *TokenBucket) StartPruning(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tb.Prune(every)
			}
		}
	}()
}
