package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
	"github.com/allisson/tasks/internal/auth/http/dto"
	authUseCase "github.com/allisson/tasks/internal/auth/usecase"
	"github.com/allisson/tasks/internal/httputil"
	userUseCase "github.com/allisson/tasks/internal/user/usecase"
	customValidation "github.com/allisson/tasks/internal/validation"
)

// AuthHandler handles HTTP requests for signup, login and logout.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	userUseCase userUseCase.UseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// SignupHandler creates a new user account.
// POST /v1/auth/signup - No authentication required.
// Returns 201 Created with the user's public fields, 409 on username collision.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), userUseCase.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// LoginHandler verifies credentials and issues a bearer token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token, 401 on invalid credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "login successful",
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// LogoutHandler revokes the presented bearer token.
// POST /v1/auth/logout - Requires a valid bearer token.
// Always returns 200 OK once the token is revoked.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token, err := ExtractBearerToken(c)
	if err != nil {
		// The authentication middleware already validated the header, so this
		// only happens if the route is miswired.
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{
		Message: "logout successful",
	})
}
