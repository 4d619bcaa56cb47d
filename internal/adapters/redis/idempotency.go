// Package redis backs the idempotency cache, the sliding-window rate
// limiter, and the JTI revocation list with one shared redis.Client from
// common/mredis. Callers treat a Redis error as "cache unavailable" and
// fall back to the authoritative store, except where a method's own doc
// says otherwise.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ledgercore/ledger-core/common/mredis"
)

const inFlightSentinel = "IN_FLIGHT"

// IdempotencyCache implements ports.IdempotencyCache as the fast-path
// layer in front of the ledgerstore's DB uniqueness constraint.
type IdempotencyCache struct {
	conn *mredis.RedisConnection
}

// NewIdempotencyCache returns an IdempotencyCache bound to conn.
func NewIdempotencyCache(conn *mredis.RedisConnection) *IdempotencyCache {
	return &IdempotencyCache{conn: conn}
}

func cacheKey(namespace, key string) string {
	return "idempotency:" + namespace + ":" + key
}

// MarkInFlight records that (namespace, key) is being processed, using
// SETNX semantics so only the first concurrent caller wins the race.
func (c *IdempotencyCache) MarkInFlight(ctx context.Context, namespace, key string, ttl time.Duration) (bool, error) {
	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return false, err
	}

	ok, err := client.SetNX(ctx, cacheKey(namespace, key), inFlightSentinel, ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// Complete overwrites the in-flight marker with the final transaction id.
func (c *IdempotencyCache) Complete(ctx context.Context, namespace, key string, transactionID uuid.UUID, ttl time.Duration) error {
	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return err
	}

	return client.Set(ctx, cacheKey(namespace, key), transactionID.String(), ttl).Err()
}

// Lookup returns the cached outcome for (namespace, key).
func (c *IdempotencyCache) Lookup(ctx context.Context, namespace, key string) (uuid.UUID, bool, bool, error) {
	client, err := c.conn.GetDB(ctx)
	if err != nil {
		return uuid.Nil, false, false, err
	}

	val, err := client.Get(ctx, cacheKey(namespace, key)).Result()
	if errors.Is(err, goredis.Nil) {
		return uuid.Nil, false, false, nil
	}

	if err != nil {
		return uuid.Nil, false, false, err
	}

	if val == inFlightSentinel {
		return uuid.Nil, true, true, nil
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, false, err
	}

	return id, false, true, nil
}
