package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
)

// TokenCacheRepository keeps a denylist of revoked token IDs in Redis.
// Entries live only as long as the token itself, so the denylist stays small.
type TokenCacheRepository struct {
	client *redis.Client
}

// NewTokenCacheRepository creates a new repository instance.
func NewTokenCacheRepository(client *redis.Client) *TokenCacheRepository {
	return &TokenCacheRepository{client: client}
}

// Revoke denylists a token ID for the given remaining lifetime.
// A non-positive lifetime means the token has already expired and there is
// nothing to store.
func (r *TokenCacheRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("revoked_token:%s", tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token ID is on the denylist.
func (r *TokenCacheRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf("revoked_token:%s", tokenID)

	err := r.client.Get(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return false, err
	}

	return true, nil
}
