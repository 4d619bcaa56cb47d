package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ledgercore/ledger-core/common/mredis"
)

// RevocationList implements ports.RevocationList: a TTL-bounded JTI
// blocklist, TTL equal to the token's remaining lifetime.
type RevocationList struct {
	conn *mredis.RedisConnection
}

// NewRevocationList returns a RevocationList bound to conn.
func NewRevocationList(conn *mredis.RedisConnection) *RevocationList {
	return &RevocationList{conn: conn}
}

func revocationKey(jti string) string {
	return "revoked:" + jti
}

// Revoke marks jti as invalidated for ttl (the remaining token lifetime).
func (r *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	client, err := r.conn.GetDB(ctx)
	if err != nil {
		return err
	}

	return client.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

// IsRevoked reports whether jti has been revoked. Lookup is non-blocking
// on the hot path; an outage falls open here and must be compensated by a
// session-row check in the database.
func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	client, err := r.conn.GetDB(ctx)
	if err != nil {
		return false, err
	}

	_, err = client.Get(ctx, revocationKey(jti)).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
