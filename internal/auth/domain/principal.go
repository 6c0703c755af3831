// Package domain defines authentication domain models and errors.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request after
// successful token verification. The ID is the owning user's record id and is
// the value every task operation is scoped by.
type Principal struct {
	ID       uuid.UUID
	Username string
}

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the issued bearer token and its expiration.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
}
