package ratelimit

import "context"

// Limiter is the injected rate-limiting capability. Implementations must
// be safe for use from concurrent requests and correct across multiple
// server instances, which is why the production implementation lives in a
// shared cache rather than process memory.
type Limiter interface {
	// Allow records an attempt under key and reports whether it is within
	// the window. When denied, retryAfter is the number of seconds the
	// caller should wait.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter int, err error)
}
