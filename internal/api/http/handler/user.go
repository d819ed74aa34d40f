package handler

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
)

// UserService defines the identity operations exposed over HTTP.
type UserService interface {
	Create(ctx context.Context, user model.User, password string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetRolesByUsername(ctx context.Context, username string) ([]model.RoleName, error)
	GetRolesByEmail(ctx context.Context, email string) ([]model.RoleName, error)
	Update(ctx context.Context, candidate model.User, refresh uuid.UUID) (model.Result, error)
	PatchAvatarPath(ctx context.Context, userID uuid.UUID, avatarPath string) error
	AssignRole(ctx context.Context, userID uuid.UUID, name model.RoleName) (model.Result, error)
	AddClaim(ctx context.Context, userID uuid.UUID, claim model.Claim) (model.Result, error)
}

// TokenService defines refresh-token lifecycle operations.
type TokenService interface {
	Issue(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// User handles HTTP endpoints for user management.
type User struct {
	users   UserService
	tokens  TokenService
	avatars model.FileStore
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(users UserService, tokens TokenService, avatars model.FileStore, logger *logger.Logger) *User {
	return &User{
		users:   users,
		tokens:  tokens,
		avatars: avatars,
		logger:  logger,
	}
}

type registerRequest struct {
	Username string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username     string    `json:"user_name"`
	Email        string    `json:"email"`
	RefreshToken uuid.UUID `json:"refresh_token"`
}

type patchAvatarRequest struct {
	AvatarPath string `json:"avatar_path"`
}

type assignRoleRequest struct {
	Role string `json:"role"`
}

type addClaimRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"user_name"`
	Email      string    `json:"email"`
	AvatarPath string    `json:"avatar_path"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		AvatarPath: u.AvatarPath,
		CreatedAt:  u.CreatedAt,
	}
}

// Register creates a new user account.
func (h *User) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_name, email and password are required"})
	}

	user, err := h.users.Create(c.Request().Context(), model.User{
		Username: req.Username,
		Email:    req.Email,
	}, req.Password)
	if err != nil {
		h.logger.Error("User handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("User handler: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get returns a user by id.
func (h *User) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetRoles returns the roles of a user looked up by username or email.
func (h *User) GetRoles(c echo.Context) error {
	var (
		roles []model.RoleName
		err   error
	)

	switch {
	case c.QueryParam("username") != "":
		roles, err = h.users.GetRolesByUsername(c.Request().Context(), c.QueryParam("username"))
	case c.QueryParam("email") != "":
		roles, err = h.users.GetRolesByEmail(c.Request().Context(), c.QueryParam("email"))
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username or email query parameter is required"})
	}
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"roles": roles})
}

// Update runs the token-gated update workflow: the caller must present a
// refresh token owned by the user being updated.
func (h *User) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RefreshToken == uuid.Nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token is required"})
	}

	result, err := h.users.Update(c.Request().Context(), model.User{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
	}, req.RefreshToken)
	if err != nil {
		h.logger.Error("User handler: update failed",
			"user_id", id,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondResult(c, result)
}

// PatchAvatar sets the user's avatar path.
func (h *User) PatchAvatar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req patchAvatarRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	if err := h.users.PatchAvatarPath(c.Request().Context(), id, req.AvatarPath); err != nil {
		return handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadAvatar stores an avatar file and patches the user's avatar path to it.
func (h *User) UploadAvatar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "failed to read file"})
	}
	defer src.Close()

	key := fmt.Sprintf("avatars/%s/%s", id, path.Base(fileHeader.Filename))
	if err := h.avatars.Upload(c.Request().Context(), key, src); err != nil {
		h.logger.Error("User handler: avatar upload failed",
			"user_id", id,
			"error", err.Error())
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store avatar"})
	}

	avatarPath := "/" + key
	if err := h.users.PatchAvatarPath(c.Request().Context(), id, avatarPath); err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"avatar_path": avatarPath})
}

// DownloadAvatar streams the user's stored avatar file.
func (h *User) DownloadAvatar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	user, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	if user.AvatarPath == "" {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user has no avatar"})
	}

	key := user.AvatarPath[1:] // stored paths start with "/"
	obj, err := h.avatars.Download(c.Request().Context(), key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read avatar"})
	}
	defer obj.Close()

	return c.Stream(http.StatusOK, "application/octet-stream", obj)
}

// AssignRole adds the user to a role from the fixed enumeration.
func (h *User) AssignRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	result, err := h.users.AssignRole(c.Request().Context(), id, model.RoleName(req.Role))
	if err != nil {
		return handleError(c, err)
	}

	return respondResult(c, result)
}

// AddClaim attaches a claim to the user; at most one claim per type.
func (h *User) AddClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	var req addClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "claim type is required"})
	}

	result, err := h.users.AddClaim(c.Request().Context(), id, model.Claim{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		return handleError(c, err)
	}

	return respondResult(c, result)
}

// RevokeTokens invalidates every refresh token of the user and reports how
// many were removed.
func (h *User) RevokeTokens(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	count, err := h.tokens.RevokeAllForUser(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"revoked": count})
}
