package ratelimit

import (
	"net/http"
	"strconv"
)

// LimitHandler answers a throttled request.
type LimitHandler func(w http.ResponseWriter, r *http.Request, res *Result)

// Middleware enforces limiter per keyFunc. It sets the X-RateLimit-* headers
// on every checked request and Retry-After on throttled ones before calling
// onLimit. Requests pass through when the key is empty or the limiter fails.
// A nil onLimit answers with a plain 429.
func Middleware(limiter Limiter, keyFunc KeyFunc, onLimit LimitHandler) func(http.Handler) http.Handler {
	if keyFunc == nil {
		panic("ratelimit.Middleware: keyFunc is required")
	}
	if onLimit == nil {
		onLimit = func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				h.Set("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter().Seconds()))))
				onLimit(w, r, res)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
