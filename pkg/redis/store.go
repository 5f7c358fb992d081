package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klwxsrx/school-admin/pkg/kv"
)

type store struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore keeps values for ttl after the last write, zero ttl keeps them forever.
func NewStore(client redis.UniversalClient, prefix string, ttl time.Duration) kv.Store {
	return store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}

	return v, nil
}

func (s store) Set(ctx context.Context, key, value string) error {
	err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

func (s store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, s.prefix+key)
	}

	err := s.client.Del(ctx, prefixed...).Err()
	if err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}

	return nil
}
