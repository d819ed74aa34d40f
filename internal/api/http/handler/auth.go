package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
)

// CredentialVerifier checks username/password pairs.
type CredentialVerifier interface {
	VerifyCredentials(ctx context.Context, username, password string) (model.User, error)
}

// Auth handles session endpoints: login issues a refresh token, logout
// revokes one. Access-token issuance is not this service's concern.
type Auth struct {
	verifier CredentialVerifier
	tokens   TokenService
	logger   *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(verifier CredentialVerifier, tokens TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

type loginRequest struct {
	Username string `json:"user_name"`
	Password string `json:"password"`
}

type logoutRequest struct {
	RefreshToken uuid.UUID `json:"refresh_token"`
}

// Login verifies credentials and issues a fresh refresh token.
func (h *Auth) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_name and password are required"})
	}

	user, err := h.verifier.VerifyCredentials(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	token, err := h.tokens.Issue(c.Request().Context(), user.ID)
	if err != nil {
		h.logger.Error("Auth handler: failed to issue refresh token",
			"user_id", user.ID,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", user.ID)

	return c.JSON(http.StatusOK, echo.Map{
		"user":          toUserResponse(user),
		"refresh_token": token,
	})
}

// Logout revokes a single refresh token.
func (h *Auth) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RefreshToken == uuid.Nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}

	if err := h.tokens.Revoke(c.Request().Context(), req.RefreshToken); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
