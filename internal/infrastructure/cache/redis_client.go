package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"oficina_os/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// ConnectRedis creates a Redis client from environment variables.
//
// Supported env vars:
//   - REDIS_ADDR (default: localhost:6379)
//   - REDIS_PASSWORD (optional)
func ConnectRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

const idempotencyKeyTTL = 24 * time.Hour

// RedisIdempotencyStore reserves payment idempotency keys with SETNX so a
// retried request observes the first reservation.
type RedisIdempotencyStore struct {
	rdb *redis.Client
}

var _ interfaces.IIdempotencyStore = (*RedisIdempotencyStore)(nil)

func NewRedisIdempotencyStore(rdb *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb}
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	ok, err := s.rdb.SetNX(ctx, redisKey, "exists", idempotencyKeyTTL).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("idempotency reserve failed")
		return false, err
	}
	return ok, nil
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	redisKey := fmt.Sprintf("idempotent-key:%s", key)
	if err := s.rdb.Del(ctx, redisKey).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("idempotency release failed")
		return err
	}
	return nil
}
