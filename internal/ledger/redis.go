package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "xp:total:"

// RedisStore keeps XP totals in Redis. INCRBY gives atomic increments and
// the totals survive service restarts.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Add increments the user's total atomically via INCRBY.
func (s *RedisStore) Add(ctx context.Context, userID string, amount int64) (int64, error) {
	total, err := s.client.IncrBy(ctx, redisKeyPrefix+userID, amount).Result()
	if err != nil {
		return 0, fmt.Errorf("INCRBY failed for user %s: %w", userID, err)
	}
	return total, nil
}

// Total returns the user's current total, zero when the key is missing.
func (s *RedisStore) Total(ctx context.Context, userID string) (int64, error) {
	total, err := s.client.Get(ctx, redisKeyPrefix+userID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("GET failed for user %s: %w", userID, err)
	}
	return total, nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
