package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	authUseCase "github.com/allisson/tasks/internal/auth/usecase"
	"github.com/allisson/tasks/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive scheme)
// 2. Verifies the token using authUseCase.Authenticate()
// 3. Stores the resolved principal in the request context
// 4. Allows downstream handlers to access the principal via GetPrincipal()
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized (MissingToken)
//   - Revoked token → 401 Unauthorized
//   - Malformed, forged or expired token → 403 Forbidden
//
// Login and signup bypass this gate entirely; every task route and logout sit
// behind it.
func AuthenticationMiddleware(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := ExtractBearerToken(c)
		if err != nil {
			logger.Debug("authentication failed: missing or malformed bearer token")
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		principal, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated principal in context
		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("principal_id", principal.ID.String()))

		c.Next()
	}
}

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns ErrMissingToken if the header is absent, uses a different scheme, or
// carries no token segment.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", authDomain.ErrMissingToken
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", authDomain.ErrMissingToken
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", authDomain.ErrMissingToken
	}

	return token, nil
}
