package database

import (
	"context"
	"fmt"

	"bullprompt-backend/config"

	"github.com/go-redis/redis/v8"
)

// RedisBackend stores every key as a Redis string, optionally namespaced
// by Prefix.
type RedisBackend struct {
	Client *redis.Client
	Prefix string
}

func ConnectRedis(ctx context.Context, cfg *config.Config) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	return NewRedisBackend(client, cfg.RedisKeyPrefix), nil
}

func NewRedisBackend(client *redis.Client, prefix string) *RedisBackend {
	return &RedisBackend{Client: client, Prefix: prefix}
}

func (r *RedisBackend) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.Prefix + k
	}

	vals, err := r.Client.MGet(ctx, full...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		switch s := v.(type) {
		case nil:
			// key does not exist
		case string:
			out[keys[i]] = []byte(s)
		default:
			return nil, fmt.Errorf("unexpected redis value type %T for key %q", v, keys[i])
		}
	}
	return out, nil
}

func (r *RedisBackend) Set(ctx context.Context, items map[string][]byte) error {
	if len(items) == 0 {
		return nil
	}

	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range items {
			pipe.Set(ctx, r.Prefix+k, v, 0)
		}
		return nil
	})
	return err
}

func (r *RedisBackend) Close() error {
	return r.Client.Close()
}
