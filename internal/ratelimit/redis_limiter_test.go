package ratelimit_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/gildedthread/storefront-api/internal/config"
	"github.com/gildedthread/storefront-api/internal/ratelimit"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchAnyArgs ignores the time-derived pipeline arguments so expectations
// only pin the command and key.
func matchAnyArgs(expected, actual []interface{}) error {
	return nil
}

func setupLimiter(t *testing.T, maxRequests int64) (ratelimit.Limiter, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.RateConfig{
		MaxRequests: maxRequests,
		WindowSize:  time.Minute,
	}

	return ratelimit.NewRedisLimiter(client, cfg), mock
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := t.Context()
	redisKey := "ratelimit:coupons:validate:203.0.113.9"

	t.Run("Success - Under The Limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 30)

		mock.CustomMatch(matchAnyArgs).ExpectZRemRangeByScore(redisKey, "0", "0").SetVal(0)
		mock.CustomMatch(matchAnyArgs).ExpectZAdd(redisKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(redisKey).SetVal(5)
		mock.ExpectExpire(redisKey, time.Minute).SetVal(true)

		// Act
		allowed, retryAfter, err := limiter.Allow(ctx, "coupons:validate:203.0.113.9")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Over The Limit", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 30)

		oldest := strconv.FormatInt(time.Now().Add(-30*time.Second).UnixNano(), 10)

		mock.CustomMatch(matchAnyArgs).ExpectZRemRangeByScore(redisKey, "0", "0").SetVal(0)
		mock.CustomMatch(matchAnyArgs).ExpectZAdd(redisKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(redisKey).SetVal(31)
		mock.ExpectExpire(redisKey, time.Minute).SetVal(true)
		mock.ExpectZRange(redisKey, 0, 0).SetVal([]string{oldest})

		// Act
		allowed, retryAfter, err := limiter.Allow(ctx, "coupons:validate:203.0.113.9")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)

		// Oldest entry is 30s into a 60s window, so the caller should come
		// back in roughly half a window.
		assert.Greater(t, retryAfter, 25)
		assert.LessOrEqual(t, retryAfter, 31)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 30)

		mock.CustomMatch(matchAnyArgs).ExpectZRemRangeByScore(redisKey, "0", "0").SetErr(assert.AnError)

		// Act
		allowed, _, err := limiter.Allow(ctx, "coupons:validate:203.0.113.9")

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
	})

	t.Run("Failure - Over The Limit With Empty Window", func(t *testing.T) {
		// Arrange
		limiter, mock := setupLimiter(t, 0)

		mock.CustomMatch(matchAnyArgs).ExpectZRemRangeByScore(redisKey, "0", "0").SetVal(0)
		mock.CustomMatch(matchAnyArgs).ExpectZAdd(redisKey, redis.Z{}).SetVal(1)
		mock.ExpectZCard(redisKey).SetVal(1)
		mock.ExpectExpire(redisKey, time.Minute).SetVal(true)
		mock.ExpectZRange(redisKey, 0, 0).SetVal([]string{})

		// Act
		allowed, retryAfter, err := limiter.Allow(ctx, "coupons:validate:203.0.113.9")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 60, retryAfter)
	})
}
