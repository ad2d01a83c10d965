package ratelimit_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rollcall/pkg/ratelimit"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newBucket(t *testing.T, rate, burst int) (*ratelimit.TokenBucket, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)}
	tb, err := ratelimit.NewTokenBucket(rate, time.Second, ratelimit.WithBurst(burst), ratelimit.WithClock(c.now))
	require.NoError(t, err)
	return tb, c
}

func TestNewTokenBucket(t *testing.T) {
	t.Parallel()

	_, err := ratelimit.NewTokenBucket(0, time.Second)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidLimit)
	_, err = ratelimit.NewTokenBucket(1, 0)
	assert.ErrorIs(t, err, ratelimit.ErrInvalidInterval)
}

func TestTokenBucket_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("burst then throttle", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 3)
		for i := range 3 {
			res, err := tb.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed, "request %d", i)
			assert.Equal(t, 3, res.Limit)
			assert.Equal(t, 2-i, res.Remaining)
		}
		res, err := tb.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, time.Second, res.RetryAfter())
	})

	t.Run("refills over time", func(t *testing.T) {
		tb, c := newBucket(t, 2, 2)
		for range 2 {
			_, _ = tb.Allow(ctx, "k")
		}
		res, _ := tb.Allow(ctx, "k")
		require.False(t, res.Allowed)

		c.advance(500 * time.Millisecond)
		res, _ = tb.Allow(ctx, "k")
		assert.True(t, res.Allowed)
		assert.Zero(t, res.RetryAfter())
	})

	t.Run("keys are independent", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 1)
		res, _ := tb.Allow(ctx, "a")
		assert.True(t, res.Allowed)
		res, _ = tb.Allow(ctx, "b")
		assert.True(t, res.Allowed)
	})

	t.Run("empty key", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 1)
		_, err := tb.Allow(ctx, "")
		assert.ErrorIs(t, err, ratelimit.ErrKeyRequired)
	})

	t.Run("burst below rate is raised", func(t *testing.T) {
		tb, _ := newBucket(t, 5, 1)
		res, _ := tb.Allow(ctx, "k")
		assert.Equal(t, 5, res.Limit)
	})
}

func TestTokenBucket_Prune(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tb, c := newBucket(t, 1, 2)
	_, _ = tb.Allow(ctx, "idle")
	c.advance(time.Second)
	_, _ = tb.Allow(ctx, "busy")
	_, _ = tb.Allow(ctx, "busy")

	// "idle" was full again after one second, "busy" needs two.
	c.advance(time.Minute)
	assert.Equal(t, 1, tb.Prune(time.Minute-time.Second))
	assert.Equal(t, 1, tb.Prune(0))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	req := func(remote string, headers map[string]string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remote
		for k, v := range headers {
			r.Header.Set(k, v)
		}
		return r
	}

	assert.Equal(t, "203.0.113.7", ratelimit.ClientIP(req("10.0.0.1:5000", map[string]string{"X-Forwarded-For": "junk, 203.0.113.7, 10.0.0.2"})))
	assert.Equal(t, "198.51.100.2", ratelimit.ClientIP(req("10.0.0.1:5000", map[string]string{"X-Real-IP": "198.51.100.2"})))
	assert.Equal(t, "10.0.0.1", ratelimit.ClientIP(req("10.0.0.1:5000", nil)))
	assert.Equal(t, "::1", ratelimit.ClientIP(req("[::1]:80", nil)))
	assert.Empty(t, ratelimit.ClientIP(req("not-an-ip", nil)))

	key := ratelimit.Composite(ratelimit.ClientIP, ratelimit.Header("X-Console-Role"))
	assert.Equal(t, "10.0.0.1:teacher", key(req("10.0.0.1:5000", map[string]string{"X-Console-Role": " Teacher "})))
	assert.Equal(t, "10.0.0.1", key(req("10.0.0.1:5000", nil)))

	long := ratelimit.Composite(ratelimit.Header("X-Long"))(req("", map[string]string{"X-Long": strings.Repeat("a", 100)}))
	assert.Len(t, long, 32)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimit.Result, error) {
	return nil, errors.New("store down")
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("throttles with headers", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 1)
		var limited *ratelimit.Result
		h := ratelimit.Middleware(tb, ratelimit.ClientIP, func(w http.ResponseWriter, _ *http.Request, res *ratelimit.Result) {
			limited = res
			w.WriteHeader(http.StatusTooManyRequests)
		})(ok)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		require.NotNil(t, limited)
		assert.False(t, limited.Allowed)
	})

	t.Run("default answer", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 1)
		h := ratelimit.Middleware(tb, ratelimit.ClientIP, nil)(ok)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("fails open", func(t *testing.T) {
		h := ratelimit.Middleware(failingLimiter{}, ratelimit.ClientIP, nil)(ok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("empty key skips", func(t *testing.T) {
		tb, _ := newBucket(t, 1, 1)
		h := ratelimit.Middleware(tb, ratelimit.Header("X-None"), nil)(ok)
		for range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	})
}
