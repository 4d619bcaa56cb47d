package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ledgercore/ledger-core/common/mredis"
)

// RateLimiter implements ports.RateLimiter: a sliding window over a Redis
// sorted set keyed by identity, scored by request timestamp. Trim, insert,
// count.
type RateLimiter struct {
	conn *mredis.RedisConnection
}

// NewRateLimiter returns a RateLimiter bound to conn.
func NewRateLimiter(conn *mredis.RedisConnection) *RateLimiter {
	return &RateLimiter{conn: conn}
}

// Allow records a request for identity and reports whether the trailing
// window, ending now, still falls within limit. The (limit+1)-th request
// in a window is rejected.
func (r *RateLimiter) Allow(ctx context.Context, identity string, window time.Duration, limit int) (bool, error) {
	client, err := r.conn.GetDB(ctx)
	if err != nil {
		return false, err
	}

	now := time.Now()
	key := "ratelimit:" + identity
	windowStart := now.Add(-window).UnixNano()
	member := strconv.FormatInt(now.UnixNano(), 10) + ":" + uuid.NewString()

	pipe := client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixNano()), Member: member})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	count, err := countCmd.Result()
	if err != nil {
		return false, err
	}

	return count <= int64(limit), nil
}
