package app

import (
	"fmt"

	authHTTP "github.com/allisson/tasks/internal/auth/http"
	authService "github.com/allisson/tasks/internal/auth/service"
	authUseCase "github.com/allisson/tasks/internal/auth/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// RevocationStore returns the revoked-token store based on configuration.
func (c *Container) RevocationStore() (authService.RevocationStore, error) {
	var err error
	c.revocationStoreInit.Do(func() {
		c.revocationStore, err = c.initRevocationStore()
		if err != nil {
			c.initErrors["revocationStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["revocationStore"]; exists {
		return nil, storedErr
	}
	return c.revocationStore, nil
}

// TokenService returns the bearer token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUC, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUC, nil
}

// AuthHandler returns the HTTP handler for signup, login and logout.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initRevocationStore creates the revoked-token store based on the configured backend.
func (c *Container) initRevocationStore() (authService.RevocationStore, error) {
	switch c.config.RevocationStore {
	case "memory":
		return authService.NewMemoryRevocationStore(c.config.RevocationPruneInterval), nil
	case "redis":
		store, err := authService.NewRedisRevocationStore(authService.RedisConfig{
			Addr:     c.config.RedisAddr,
			Password: c.config.RedisPassword,
			DB:       c.config.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis revocation store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported revocation store: %s", c.config.RevocationStore)
	}
}

// initTokenService creates the bearer token service.
// The signing key must be provided via configuration; starting without one
// would make every token forgeable.
func (c *Container) initTokenService() (authService.TokenService, error) {
	if c.config.AuthTokenSigningKey == "" {
		return nil, fmt.Errorf("AUTH_TOKEN_SIGNING_KEY must be set")
	}

	revocationStore, err := c.RevocationStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get revocation store for token service: %w", err)
	}

	return authService.NewTokenService(
		c.config.AuthTokenSigningKey,
		c.config.AuthTokenExpiration,
		revocationStore,
	), nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(userRepo, tokenService, c.PasswordService())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the auth HTTP handler with all its dependencies.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	userUC, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for auth handler: %w", err)
	}

	logger := c.Logger()

	return authHTTP.NewAuthHandler(authUC, userUC, logger), nil
}
