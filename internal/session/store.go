package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store keeps a denylist of revoked token ids so that sign-out takes
// effect before the JWT expires. A nil store (or a store without a
// Redis connection) disables revocation: tokens then simply age out.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func key(tokenID string) string {
	return "session:revoked:" + tokenID
}

// Revoke denylists a token id for the remainder of its lifetime.
func (s *Store) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if s == nil || s.rdb == nil || tokenID == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, key(tokenID), "1", ttl).Err()
}

func (s *Store) IsRevoked(ctx context.Context, tokenID string) bool {
	if s == nil || s.rdb == nil || tokenID == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, key(tokenID)).Result()
	return err == nil && n > 0
}
