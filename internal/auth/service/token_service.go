package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	apperrors "github.com/allisson/tasks/internal/errors"
)

// Claims represents the signed token payload binding a principal id.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
}

// tokenService implements TokenService using HMAC-SHA256 signed JWTs.
type tokenService struct {
	signingKey  []byte
	expiration  time.Duration
	revocations RevocationStore
}

// NewTokenService creates a TokenService with the given signing key, token
// lifetime and revocation store. The signing key comes from configuration and
// is never embedded in source.
func NewTokenService(signingKey string, expiration time.Duration, revocations RevocationStore) TokenService {
	return &tokenService{
		signingKey:  []byte(signingKey),
		expiration:  expiration,
		revocations: revocations,
	}
}

// Issue creates a signed token for the principal.
func (t *tokenService) Issue(principalID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.expiration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: principalID,
	})

	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify validates a token and returns the bound principal.
// The revocation check runs first so a revoked-but-still-structurally-valid
// token is rejected before any signature work.
func (t *tokenService) Verify(ctx context.Context, token string) (*authDomain.Principal, error) {
	revoked, err := t.revocations.IsRevoked(ctx, HashToken(token))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, authDomain.ErrTokenRevoked
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.signingKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, authDomain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, authDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, authDomain.ErrTokenMalformed
		default:
			return nil, authDomain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, authDomain.ErrTokenSignatureInvalid
	}

	return &authDomain.Principal{ID: claims.UserID}, nil
}

// Revoke inserts the token into the revocation set. The token's own expiry is
// extracted (without validating it) so the store can prune the entry once the
// token would have died anyway.
func (t *tokenService) Revoke(ctx context.Context, token string) error {
	expiresAt := time.Now().UTC().Add(t.expiration)

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := t.revocations.Revoke(ctx, HashToken(token), expiresAt); err != nil {
		return apperrors.Wrap(err, "failed to revoke token")
	}
	return nil
}

// HashToken hashes a token string using SHA-256.
// Revocation entries store hashes so raw bearer tokens never sit in memory or
// Redis longer than a request.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
