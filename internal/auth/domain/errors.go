package domain

import (
	"github.com/allisson/tasks/internal/errors"
)

// Authentication errors.
//
// The outward mapping is fixed: errors wrapping ErrUnauthorized surface as 401,
// errors wrapping ErrForbidden surface as 403. A missing or revoked token is
// unauthorized; a token that is present but structurally bad, forged or expired
// is forbidden.
var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so that login responses never reveal which usernames exist.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrMissingToken indicates the Authorization header is absent or not a
	// well-formed bearer scheme.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing bearer token")

	// ErrTokenRevoked indicates the token is present in the revocation set.
	ErrTokenRevoked = errors.Wrap(errors.ErrUnauthorized, "token has been revoked")

	// ErrTokenMalformed indicates the token string could not be parsed.
	ErrTokenMalformed = errors.Wrap(errors.ErrForbidden, "token is malformed")

	// ErrTokenSignatureInvalid indicates the token signature does not verify.
	ErrTokenSignatureInvalid = errors.Wrap(errors.ErrForbidden, "token signature is invalid")

	// ErrTokenExpired indicates the token is past its expiration time.
	ErrTokenExpired = errors.Wrap(errors.ErrForbidden, "token has expired")
)
