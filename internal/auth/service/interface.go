// Package service provides technical services for authentication operations.
//
// This package implements bearer-token issuance and verification, the
// revoked-token store and password hashing using industry-standard
// cryptographic practices.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
)

// TokenService defines bearer-token lifecycle operations.
//
// A token is a signed, time-bounded credential binding a principal id. Once
// issued it stays valid until the earlier of its expiry or explicit
// revocation; both states are terminal.
type TokenService interface {
	// Issue creates a signed token embedding the principal id, the issuance
	// time and an expiration a fixed window in the future. It has no side
	// effects beyond payload construction.
	Issue(principalID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify validates a token string and returns the principal it binds.
	// The revocation set is consulted before any cryptographic work so a
	// revoked token is rejected uniformly and cheaply. Returns
	// ErrTokenRevoked, ErrTokenMalformed, ErrTokenSignatureInvalid or
	// ErrTokenExpired on failure.
	Verify(ctx context.Context, token string) (*authDomain.Principal, error)

	// Revoke adds a token to the revocation set. Revoking an already-revoked
	// or unknown token is not an error.
	Revoke(ctx context.Context, token string) error
}

// RevocationStore is the authoritative record of tokens that must be rejected
// even if otherwise structurally valid. Keys are SHA-256 hashes of the token
// string. Entries become prunable once the token's own expiry has passed.
//
// Implementations must be safe under concurrent Revoke and IsRevoked calls.
type RevocationStore interface {
	// Revoke inserts a token hash. Idempotent.
	Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error

	// IsRevoked reports whether a token hash is present.
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// PasswordService defines operations for credential hashing and verification.
// Implementations must use an industry-standard hashing algorithm (e.g.,
// argon2id) and constant-time verification to prevent timing attacks.
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Compare compares a plain text password against a stored hash.
	// Returns true if they match. This is constant-time.
	Compare(plainPassword string, hashedPassword string) bool
}
