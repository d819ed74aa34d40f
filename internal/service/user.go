package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
	"github.com/mkarpovich/identity-server/internal/security"
)

// UserService orchestrates user CRUD, role assignment, claim assignment and
// the refresh-token-gated update workflow. Every successful mutation is
// announced to the admin read model over the message broker; delivery is
// best-effort and never affects the returned result, so the admin side may
// drift if the broker is down.
type UserService struct {
	users     model.UserStore
	roles     model.RoleStore
	claims    model.ClaimStore
	tokens    *RefreshTokenService
	publisher model.Publisher
	hasher    *security.Hasher
	logger    *logger.Logger
}

func NewUserService(
	users model.UserStore,
	roles model.RoleStore,
	claims model.ClaimStore,
	refreshTokenStore model.RefreshTokenStore,
	publisher model.Publisher,
	hasher *security.Hasher,
	logger *logger.Logger,
) *UserService {
	return &UserService{
		users:     users,
		roles:     roles,
		claims:    claims,
		tokens:    NewRefreshTokenService(refreshTokenStore, logger),
		publisher: publisher,
		hasher:    hasher,
		logger:    logger,
	}
}

// Create stores a new user with a hashed password and assigns the default role.
func (s *UserService) Create(ctx context.Context, user model.User, password string) (model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	saved, err := s.users.Create(ctx, user)
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", user.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.roles.AddToUser(ctx, saved.ID, model.DefaultRole); err != nil {
		return model.User{}, fmt.Errorf("failed to assign default role: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", saved.ID,
		"username", saved.Username)

	return saved, nil
}

// GetByID resolves a user by id.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUsername resolves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// GetByEmail resolves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// GetRolesByUsername returns the roles of the user with the given username.
func (s *UserService) GetRolesByUsername(ctx context.Context, username string) ([]model.RoleName, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.roles.GetForUser(ctx, user.ID)
}

// GetRolesByEmail returns the roles of the user with the given email.
func (s *UserService) GetRolesByEmail(ctx context.Context, email string) ([]model.RoleName, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.roles.GetForUser(ctx, user.ID)
}

// VerifyCredentials checks a username/password pair and returns the user on
// success. Both an unknown username and a wrong password come back as
// model.ErrInvalidCredentials.
func (s *UserService) VerifyCredentials(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// AssignRole adds the user to a role from the fixed enumeration.
func (s *UserService) AssignRole(ctx context.Context, userID uuid.UUID, name model.RoleName) (model.Result, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return model.Result{}, err
	}

	exists, err := s.roles.Exists(ctx, name)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to check role existence: %w", err)
	}
	if !exists {
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeRoleMissing,
			Description: fmt.Sprintf("role %s not found", name),
		}), nil
	}

	if err := s.roles.AddToUser(ctx, userID, name); err != nil {
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeStoreFailure,
			Description: err.Error(),
		}), nil
	}

	return model.Success(), nil
}

// AddClaim attaches a claim to the user. A user holds at most one claim per
// type; a second claim of the same type fails with model.ErrDuplicateClaim.
func (s *UserService) AddClaim(ctx context.Context, userID uuid.UUID, claim model.Claim) (model.Result, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return model.Result{}, err
	}

	existing, err := s.claims.GetForUser(ctx, userID)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to get claims: %w", err)
	}
	for _, c := range existing {
		if c.Type == claim.Type {
			return model.Result{}, model.ErrDuplicateClaim
		}
	}

	if err := s.claims.Add(ctx, userID, claim); err != nil {
		// concurrent insert of the same type surfaces as a duplicate too
		if errors.Is(err, model.ErrDuplicateClaim) {
			return model.Result{}, err
		}
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeStoreFailure,
			Description: err.Error(),
		}), nil
	}

	return model.Success(), nil
}

// Update applies the candidate's email and username onto the stored record,
// gated on possession of a refresh token bound to that same user. Other
// fields are untouched: this is a field-level merge, not a replace. On
// successful persistence a change notification is published; notification
// failure does not affect the returned result.
func (s *UserService) Update(ctx context.Context, candidate model.User, refresh uuid.UUID) (model.Result, error) {
	s.logger.Debug("User service: starting token-gated update",
		"user_id", candidate.ID)

	existing, err := s.users.GetByID(ctx, candidate.ID)
	if err != nil {
		return model.Result{}, err
	}

	existing.Email = candidate.Email
	existing.Username = candidate.Username

	token, err := s.tokens.GetByID(ctx, refresh)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Result{}, model.ErrInvalidToken
		}
		return model.Result{}, fmt.Errorf("failed to resolve refresh token: %w", err)
	}

	// A refresh token authorizes updates only to its own owner.
	if token.UserID != candidate.ID {
		s.logger.Info("User service: refresh token owner mismatch",
			"user_id", candidate.ID,
			"token_owner", token.UserID)
		return model.Result{}, model.ErrNotTokenOwner
	}

	if _, err := s.users.Update(ctx, existing); err != nil {
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeStoreFailure,
			Description: err.Error(),
		}), nil
	}

	s.publishUserChanged(ctx, candidate.ID, candidate.AvatarPath)

	return model.Success(), nil
}

// PatchAvatarPath sets the user's avatar path and publishes the same change
// notification as Update. An empty or whitespace-only path is rejected
// before anything is persisted.
func (s *UserService) PatchAvatarPath(ctx context.Context, userID uuid.UUID, avatarPath string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(avatarPath) == "" {
		return model.ErrEmptyAvatarPath
	}

	user.AvatarPath = avatarPath

	if _, err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update avatar for user: %w", err)
	}

	s.logger.Info("User service: avatar updated",
		"user_id", userID,
		"avatar_path", avatarPath)

	s.publishUserChanged(ctx, userID, avatarPath)

	return nil
}

// publishUserChanged re-reads the user and announces the mutation to the
// admin queue. Only the user's first role is reported, and ban/mute flags
// are always false on this path. Failures are logged, never propagated.
func (s *UserService) publishUserChanged(ctx context.Context, userID uuid.UUID, avatarPath string) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("User service: failed to re-read user for notification",
			"user_id", userID,
			"error", err.Error())
		return
	}

	names, err := s.roles.GetForUser(ctx, userID)
	if err != nil {
		s.logger.Error("User service: failed to get roles for notification",
			"user_id", userID,
			"error", err.Error())
		return
	}
	if len(names) == 0 {
		s.logger.Error("User service: user has no roles, skipping notification",
			"user_id", userID)
		return
	}

	roleID, err := s.roles.GetID(ctx, names[0])
	if err != nil {
		s.logger.Error("User service: failed to resolve role id for notification",
			"user_id", userID,
			"role", names[0],
			"error", err.Error())
		return
	}

	event := model.UserChangedEvent{
		Username:   user.Username,
		ID:         user.ID,
		RoleID:     roleID,
		Email:      user.Email,
		IsBanned:   false,
		IsMuted:    false,
		AvatarPath: avatarPath,
	}

	if err := s.publisher.Push(ctx, model.QueueUserUpdate, event); err != nil {
		s.logger.Error("User service: failed to publish user change",
			"user_id", userID,
			"queue", model.QueueUserUpdate,
			"error", err.Error())
	}
}
