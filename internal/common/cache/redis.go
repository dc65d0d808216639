package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisClient[T any] struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisClient returns a Client storing JSON encoded values under prefix+key.
func NewRedisClient[T any](client redis.UniversalClient, prefix string) Client[T] {
	return &redisClient[T]{redis: client, prefix: prefix}
}

func (r *redisClient[T]) key(key string) string {
	return r.prefix + key
}

func (r *redisClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	raw, err := r.redis.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return result, ErrNotExists
	}
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", r.key(key), err)
	}

	return result, nil
}

func (r *redisClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	raw, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key(key), err)
	}

	return r.redis.Set(ctx, r.key(key), raw, ttl).Err()
}

func (r *redisClient[T]) Del(ctx context.Context, key string) error {
	return r.redis.Del(ctx, r.key(key)).Err()
}

func (r *redisClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, r, opts)
}
