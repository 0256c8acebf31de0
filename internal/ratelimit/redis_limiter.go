package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gildedthread/storefront-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// redisLimiter implements a sliding window over a Redis sorted set. Each
// attempt is a member scored by its unix timestamp; entries older than the
// window are trimmed on every call.
type redisLimiter struct {
	client *redis.Client
	cfg    *config.RateConfig
}

func NewRedisLimiter(client *redis.Client, cfg *config.RateConfig) Limiter {
	return &redisLimiter{client: client, cfg: cfg}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, int, error) {

	redisKey := "ratelimit:" + key

	now := time.Now().UnixNano()
	windowStart := now - l.cfg.WindowSize.Nanoseconds()

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, redisKey, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit pipeline failed: %w", err)
	}

	attempts := count.Val()

	if attempts > l.cfg.MaxRequests {
		oldest, err := l.client.ZRange(ctx, redisKey, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return false, int(l.cfg.WindowSize.Seconds()), err
		}

		oldestNano, err := strconv.ParseInt(oldest[0], 10, 64)
		if err != nil {
			return false, int(l.cfg.WindowSize.Seconds()), nil
		}

		retryAfter := l.cfg.WindowSize - time.Duration(now-oldestNano)
		seconds := int(retryAfter.Seconds()) + 1

		return false, seconds, nil
	}

	return true, 0, nil
}
