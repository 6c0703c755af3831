package usecase

import (
	"context"
	"errors"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	authService "github.com/allisson/tasks/internal/auth/service"
	userDomain "github.com/allisson/tasks/internal/user/domain"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	userRepo        UserRepository
	tokenService    authService.TokenService
	passwordService authService.PasswordService
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	userRepo UserRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
) AuthUseCase {
	return &authUseCase{
		userRepo:        userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}

// Login verifies credentials and issues a bearer token.
//
// Security notes:
//   - Returns ErrInvalidCredentials for both unknown usernames and wrong
//     passwords so responses never reveal which usernames exist.
//   - Password verification is constant-time (Argon2id).
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := a.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.Compare(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokenService.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authDomain.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the presented token. The operation is idempotent: revoking
// an already-revoked token succeeds with no different outward behavior.
func (a *authUseCase) Logout(ctx context.Context, token string) error {
	return a.tokenService.Revoke(ctx, token)
}

// Authenticate resolves a bearer token to its principal.
// Failures carry the reason (revoked, malformed, bad signature, expired) and
// map outward to 401 or 403 at the HTTP boundary.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	return a.tokenService.Verify(ctx, token)
}
