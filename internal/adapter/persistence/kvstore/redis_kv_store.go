package kvstore

import (
	"context"
	"errors"
	"time"

	"counter_billing/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

type redisAPI interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisKeyValueStore stores each key as a plain Redis string with no TTL.
type RedisKeyValueStore struct {
	rdb redisAPI
}

var _ interfaces.IKeyValueStore = (*RedisKeyValueStore)(nil)

func NewRedisKeyValueStore(rdb redisAPI) *RedisKeyValueStore {
	return &RedisKeyValueStore{rdb: rdb}
}

func (s *RedisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisKeyValueStore) Remove(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
