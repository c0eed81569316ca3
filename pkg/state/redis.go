package state

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// DefaultRedisKeyPrefix namespaces every companion key in a shared Redis.
const DefaultRedisKeyPrefix = "step_companion:"

// RedisStore implements Store using Redis strings. Keys never expire;
// records of past days are left in place.
type RedisStore struct {
	client redis.UniversalClient
	cfg    RedisStoreConfig
}

// RedisStoreConfig configures a RedisStore.
type RedisStoreConfig struct {
	KeyPrefix string
}

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client redis.UniversalClient, cfg RedisStoreConfig) *RedisStore {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{
		client: client,
		cfg:    cfg,
	}
}

func (r *RedisStore) makeKey(key string) string {
	return r.cfg.KeyPrefix + key
}

// Get returns the integer stored at key, or 0 if absent.
func (r *RedisStore) Get(ctx context.Context, key string) (int, error) {
	value, err := r.client.Get(ctx, r.makeKey(key)).Int()
	if err == redis.Nil {
		logrus.Debugf("no value for key %s", key)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value at key without expiry.
func (r *RedisStore) Set(ctx context.Context, key string, value int) error {
	if err := r.client.Set(ctx, r.makeKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	logrus.Debugf("set %s=%d", key, value)
	return nil
}

// Ping checks the Redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
