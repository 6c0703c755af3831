package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	apperrors "github.com/allisson/tasks/internal/errors"
)

const testSigningKey = "test-signing-key-with-enough-entropy"

func newTestTokenService(expiration time.Duration) (TokenService, RevocationStore) {
	store := NewMemoryRevocationStore(0)
	return NewTokenService(testSigningKey, expiration, store), store
}

func TestNewTokenService(t *testing.T) {
	service, _ := newTestTokenService(time.Hour)
	assert.NotNil(t, service)
	assert.IsType(t, &tokenService{}, service)
}

func TestTokenService_Issue(t *testing.T) {
	service, _ := newTestTokenService(time.Hour)
	principalID := uuid.Must(uuid.NewV7())

	t.Run("Success_IssuesSignedToken", func(t *testing.T) {
		token, expiresAt, err := service.Issue(principalID)
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)
	})

	t.Run("Success_RoundTripBindsPrincipal", func(t *testing.T) {
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		principal, err := service.Verify(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, principalID, principal.ID)
	})

	t.Run("Success_IssuesUniqueTokensOverTime", func(t *testing.T) {
		token1, _, err := service.Issue(principalID)
		require.NoError(t, err)

		// IssuedAt has second granularity; wait so the claims differ.
		time.Sleep(1100 * time.Millisecond)

		token2, _, err := service.Issue(principalID)
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)
	})
}

func TestTokenService_Verify(t *testing.T) {
	ctx := context.Background()
	principalID := uuid.Must(uuid.NewV7())

	t.Run("Success_ValidToken", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		principal, err := service.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, principalID, principal.ID)
	})

	t.Run("Error_RevokedToken", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		require.NoError(t, service.Revoke(ctx, token))

		_, err = service.Verify(ctx, token)
		assert.ErrorIs(t, err, authDomain.ErrTokenRevoked)
		assert.True(t, apperrors.Is(err, apperrors.ErrUnauthorized))
	})

	t.Run("Error_RevocationCheckedBeforeSignature", func(t *testing.T) {
		// A token signed with a different key that has been revoked must
		// surface as revoked, not as a signature failure.
		service, store := newTestTokenService(time.Hour)
		forged := issueWithKey(t, principalID, "another-signing-key", time.Hour)

		require.NoError(t, store.Revoke(ctx, HashToken(forged), time.Now().UTC().Add(time.Hour)))

		_, err := service.Verify(ctx, forged)
		assert.ErrorIs(t, err, authDomain.ErrTokenRevoked)
	})

	t.Run("Error_WrongSigningKey", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)
		forged := issueWithKey(t, principalID, "another-signing-key", time.Hour)

		_, err := service.Verify(ctx, forged)
		assert.ErrorIs(t, err, authDomain.ErrTokenSignatureInvalid)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		service, _ := newTestTokenService(-time.Minute)
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		_, err = service.Verify(ctx, token)
		assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	})

	t.Run("Error_MalformedToken", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)

		_, err := service.Verify(ctx, "not-a-token")
		assert.ErrorIs(t, err, authDomain.ErrTokenMalformed)
	})

	t.Run("Error_UnsignedToken", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)

		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
				ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
			},
			UserID: principalID,
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.Verify(ctx, token)
		assert.ErrorIs(t, err, authDomain.ErrTokenSignatureInvalid)
	})
}

func TestTokenService_Revoke(t *testing.T) {
	ctx := context.Background()
	principalID := uuid.Must(uuid.NewV7())

	t.Run("Success_RevokeIsIdempotent", func(t *testing.T) {
		service, _ := newTestTokenService(time.Hour)
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		require.NoError(t, service.Revoke(ctx, token))
		require.NoError(t, service.Revoke(ctx, token))

		_, err = service.Verify(ctx, token)
		assert.ErrorIs(t, err, authDomain.ErrTokenRevoked)
	})

	t.Run("Success_MalformedTokenStillRecorded", func(t *testing.T) {
		// Revocation must not depend on the token parsing; the raw string is
		// hashed and recorded with a fallback expiry.
		service, store := newTestTokenService(time.Hour)

		require.NoError(t, service.Revoke(ctx, "garbage-token"))

		revoked, err := store.IsRevoked(ctx, HashToken("garbage-token"))
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Success_ExpiredTokenRevokedBeforeExpiryCheck", func(t *testing.T) {
		// Verification of an expired and revoked token reports revocation,
		// matching the check order in Verify.
		service, _ := newTestTokenService(-time.Minute)
		token, _, err := service.Issue(principalID)
		require.NoError(t, err)

		require.NoError(t, service.Revoke(ctx, token))

		_, err = service.Verify(ctx, token)
		assert.ErrorIs(t, err, authDomain.ErrTokenRevoked)
	})
}

func TestHashToken(t *testing.T) {
	t.Run("Success_Deterministic", func(t *testing.T) {
		assert.Equal(t, HashToken("some-token"), HashToken("some-token"))
	})

	t.Run("Success_SHA256HexLength", func(t *testing.T) {
		assert.Len(t, HashToken("some-token"), 64)
	})

	t.Run("Success_DifferentTokensDifferentHashes", func(t *testing.T) {
		assert.NotEqual(t, HashToken("token-a"), HashToken("token-b"))
	})
}

// issueWithKey signs a token with an arbitrary key for forgery tests.
func issueWithKey(t *testing.T, principalID uuid.UUID, key string, expiration time.Duration) string {
	t.Helper()

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
		UserID: principalID,
	})

	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}
