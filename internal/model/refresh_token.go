package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore defines persistence operations for refresh tokens.
// Tokens are immutable: they are created, read and deleted, never updated.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByID(ctx context.Context, token uuid.UUID) (RefreshToken, error)
	DeleteByID(ctx context.Context, token uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// RefreshToken is an opaque bearer credential bound to exactly one user.
// UserID never changes after creation.
type RefreshToken struct {
	Token        uuid.UUID
	UserID       uuid.UUID
	CreationDate time.Time
}
