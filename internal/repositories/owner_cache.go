package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-transactions/internal/logger"
)

// AccountOwnerCacheRepository caches account ownership lookups in Redis so the
// ownership check of an internal transfer does not hit the account service on
// every request.
type AccountOwnerCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached owners
}

// NewAccountOwnerCacheRepository creates a new repository instance with the given TTL.
func NewAccountOwnerCacheRepository(client *redis.Client, expiration time.Duration) *AccountOwnerCacheRepository {
	return &AccountOwnerCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetOwner returns the cached owning customer id for an account.
func (r *AccountOwnerCacheRepository) GetOwner(ctx context.Context, accountID string) (string, error) {
	key := fmt.Sprintf("account_owner:%s", accountID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("owner not found in cache for account %s", accountID)
		}
		return "", err
	}
	return val, nil
}

// SetOwner caches the owning customer id of an account with expiration.
func (r *AccountOwnerCacheRepository) SetOwner(ctx context.Context, accountID, customerID string) error {
	key := fmt.Sprintf("account_owner:%s", accountID)
	err := r.client.Set(ctx, key, customerID, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", customerID,
		"error", err,
	)

	return err
}
