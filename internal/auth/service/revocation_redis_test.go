package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) RevocationStore {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisRevocationStore(RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	return store
}

func TestNewRedisRevocationStore(t *testing.T) {
	t.Run("Success_ConnectsToRedis", func(t *testing.T) {
		store := newMiniredisStore(t)
		assert.NotNil(t, store)
	})

	t.Run("Error_UnreachableRedis", func(t *testing.T) {
		_, err := NewRedisRevocationStore(RedisConfig{Addr: "localhost:1"})
		assert.Error(t, err)
	})
}

func TestRedisRevocationStore_RevokeAndIsRevoked(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UnknownHashIsNotRevoked", func(t *testing.T) {
		store := newMiniredisStore(t)

		revoked, err := store.IsRevoked(ctx, "unknown-hash")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Success_RevokedHashIsReported", func(t *testing.T) {
		store := newMiniredisStore(t)

		require.NoError(t, store.Revoke(ctx, "hash-1", time.Now().UTC().Add(time.Hour)))

		revoked, err := store.IsRevoked(ctx, "hash-1")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Success_RevokeIsIdempotent", func(t *testing.T) {
		store := newMiniredisStore(t)
		expiresAt := time.Now().UTC().Add(time.Hour)

		require.NoError(t, store.Revoke(ctx, "hash-2", expiresAt))
		require.NoError(t, store.Revoke(ctx, "hash-2", expiresAt))

		revoked, err := store.IsRevoked(ctx, "hash-2")
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Success_AlreadyExpiredTokenIsNoOp", func(t *testing.T) {
		store := newMiniredisStore(t)

		require.NoError(t, store.Revoke(ctx, "hash-3", time.Now().UTC().Add(-time.Minute)))

		revoked, err := store.IsRevoked(ctx, "hash-3")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestRedisRevocationStore_TTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	store, err := NewRedisRevocationStore(RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, "hash-ttl", time.Now().UTC().Add(time.Minute)))

	revoked, err := store.IsRevoked(ctx, "hash-ttl")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Entries disappear once the token's own lifetime has passed.
	mr.FastForward(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "hash-ttl")
	require.NoError(t, err)
	assert.False(t, revoked)
}
