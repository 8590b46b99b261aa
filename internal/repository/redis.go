package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenSuppressor records device tokens the provider reported as dead so
// later multicast calls can skip them.
type TokenSuppressor interface {
	IsTokenSuppressed(ctx context.Context, token string) (bool, error)
	SuppressToken(ctx context.Context, token string, ttl time.Duration) error
}

// RedisRepository backs token suppression with Redis TTL keys.
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// IsTokenSuppressed returns true if the token is currently marked as invalid.
func (r *RedisRepository) IsTokenSuppressed(ctx context.Context, token string) (bool, error) {
	key := "push:token:suppressed:" + token
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

// SuppressToken stores a token in Redis with a TTL.
func (r *RedisRepository) SuppressToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	key := "push:token:suppressed:" + token
	return r.client.SetEX(ctx, key, "1", ttl).Err()
}
