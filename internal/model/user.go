package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) (User, error)
}

// User represents a stored identity record. Ban/mute state is owned by the
// admin service and is not part of this record.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash []byte
	AvatarPath   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
