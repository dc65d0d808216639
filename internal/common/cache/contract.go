package cache

import (
	"context"
	"errors"
	"time"
)

// Client stores values of T under string keys.
type Client[T any] interface {
	Get(ctx context.Context, key string) (T, error)
	Set(ctx context.Context, key string, object T, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error)
}

var (
	ErrNotExists           = errors.New("key not exists on cache storage")
	ErrCallbackNotProvided = errors.New("callback not provided")
)

type GetOrSetOpts[T any] struct {
	Key      string
	TTL      time.Duration
	Callback func() (T, error)

	// OnStoreError is told when a loaded value could not be written back.
	// The loaded value is still returned.
	OnStoreError func(err error)
}

func getOrSet[T any](ctx context.Context, c Client[T], opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	cached, err := c.Get(ctx, opts.Key)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, ErrNotExists):
		return result, err
	}

	loaded, err := opts.Callback()
	if err != nil {
		return result, err
	}

	if err := c.Set(ctx, opts.Key, loaded, opts.TTL); err != nil && opts.OnStoreError != nil {
		opts.OnStoreError(err)
	}

	return loaded, nil
}
