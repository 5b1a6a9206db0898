package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// redisBlob keeps each collection blob under its key in Redis. No TTL:
// collections are durable until overwritten.
type redisBlob struct {
	client *redis.Client
}

func NewRedisBlob(client *redis.Client) Blob {
	return &redisBlob{client: client}
}

// NewRedisBlobFromURL connects to Redis using a redis:// URL and verifies
// the connection before returning.
func NewRedisBlobFromURL(ctx context.Context, url string) (Blob, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &redisBlob{client: client}, nil
}

// Close releases the underlying connection pool.
func (b *redisBlob) Close() error {
	return b.client.Close()
}

func (b *redisBlob) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, true, nil
}

func (b *redisBlob) Put(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
