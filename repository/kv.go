package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// KV is the persistence collaborator for session state: opaque blobs under
// logical keys, no schema enforcement.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV { return &RedisKV{Client: client} }

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, key, value, 0).Err()
}

func (s *RedisKV) Del(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
