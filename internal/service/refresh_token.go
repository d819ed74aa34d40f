package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
)

// RefreshTokenService issues, resolves and revokes opaque refresh tokens.
// A token is a random uuid bound to exactly one user; ownership never changes.
type RefreshTokenService struct {
	store  model.RefreshTokenStore
	logger *logger.Logger
}

func NewRefreshTokenService(store model.RefreshTokenStore, logger *logger.Logger) *RefreshTokenService {
	return &RefreshTokenService{store: store, logger: logger}
}

// Issue creates and persists a fresh token for the user.
func (s *RefreshTokenService) Issue(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	rt := model.RefreshToken{
		Token:        uuid.New(),
		UserID:       userID,
		CreationDate: time.Now(),
	}

	if err := s.store.Create(ctx, rt); err != nil {
		return uuid.Nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	s.logger.Debug("RefreshToken service: token issued",
		"user_id", userID)

	return rt.Token, nil
}

// GetByID resolves a token record. Absence is reported as model.ErrNotFound,
// a normal outcome callers must distinguish from a populated record.
func (s *RefreshTokenService) GetByID(ctx context.Context, token uuid.UUID) (model.RefreshToken, error) {
	return s.store.GetByID(ctx, token)
}

// Revoke removes a single token. Returns model.ErrNotFound if it never
// existed or was already revoked.
func (s *RefreshTokenService) Revoke(ctx context.Context, token uuid.UUID) error {
	return s.store.DeleteByID(ctx, token)
}

// RevokeAllForUser removes every token owned by the user and returns how
// many existed. Used to invalidate all sessions at once.
func (s *RefreshTokenService) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.store.DeleteAllByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	s.logger.Info("RefreshToken service: revoked all tokens for user",
		"user_id", userID,
		"count", count)

	return count, nil
}
