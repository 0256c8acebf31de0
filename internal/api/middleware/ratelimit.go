package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gildedthread/storefront-api/internal/errors"
	"github.com/gildedthread/storefront-api/internal/ratelimit"
	"github.com/gildedthread/storefront-api/internal/utils"
	"github.com/gildedthread/storefront-api/internal/utils/response"
)

// RateLimit keys the limiter by client IP and route pattern so one noisy
// endpoint cannot exhaust another's window. The limiter is fail-open: if
// the shared cache is unreachable the request proceeds.
func RateLimit(limiter ratelimit.Limiter, pattern string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		key := utils.ClientIP(r) + ":" + pattern

		allowed, retryAfter, err := limiter.Allow(r.Context(), key)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)

			return
		}

		if !allowed {
			logger.Warn("Rate limit exceeded",
				slog.String("key", key),
				slog.Int("retryAfter", retryAfter))
			response.Error(w, errors.TooManyRequestsError("Too many requests", retryAfter))

			return
		}

		next.ServeHTTP(w, r)
	}
}
