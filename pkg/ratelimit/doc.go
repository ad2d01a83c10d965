// Package ratelimit throttles API callers with an in-memory token bucket.
//
// Each key (usually the client IP) owns a bucket of burst
// tokens refilled at a fixed rate. The middleware answers throttled requests
// through a caller-supplied callback and fails open when the limiter errors.
//
//	limiter, err := ratelimit.NewTokenBucket(10, time.Second, ratelimit.WithBurst(20))
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimit.Middleware(limiter, ratelimit.ClientIP, onLimit))
package ratelimit
