package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/tasks/internal/errors"
)

// revocationKeyPrefix namespaces revocation entries in Redis.
const revocationKeyPrefix = "revoked_token:"

// redisRevocationStore implements RevocationStore backed by Redis.
//
// Entries are stored with a TTL equal to the token's remaining lifetime, so
// Redis prunes them exactly when the token would have expired on its own.
type redisRevocationStore struct {
	client *redis.Client
}

// RedisConfig holds connection settings for the Redis revocation store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisRevocationStore connects to Redis and returns a revocation store.
func NewRedisRevocationStore(cfg RedisConfig) (RevocationStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to ping redis")
	}

	return &redisRevocationStore{client: client}, nil
}

// Revoke inserts a token hash with a TTL matching the token's remaining lifetime.
func (s *redisRevocationStore) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token is already expired; verification rejects it without our help.
		return nil
	}

	if err := s.client.Set(ctx, revocationKeyPrefix+tokenHash, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store revocation entry")
	}
	return nil
}

// IsRevoked reports whether a token hash is present.
func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	err := s.client.Get(ctx, revocationKeyPrefix+tokenHash).Err()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, apperrors.Wrap(err, "failed to check revocation entry")
	}
	return true, nil
}
