// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	userDomain "github.com/allisson/tasks/internal/user/domain"
)

// AuthUseCase defines the authentication business operations.
type AuthUseCase interface {
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)

	// Logout revokes the presented token. Revoking twice is a no-op.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a bearer token to the principal it binds.
	Authenticate(ctx context.Context, token string) (*authDomain.Principal, error)
}

// UserRepository defines the user lookups the auth use case needs.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
}
