package model

import (
	"context"

	"github.com/google/uuid"
)

// Publisher pushes structured messages to a named queue. Delivery is
// best-effort: the identity flow never blocks on broker confirmation.
type Publisher interface {
	Push(ctx context.Context, queue string, message any) error
}

// QueueUserUpdate is the queue the admin read model consumes user changes from.
const QueueUserUpdate = "user_update_identity_admin"

// UserChangedEvent announces a successful user mutation to the admin side.
// IsBanned and IsMuted are always false on this path: moderation flags are
// owned by a different write path and never toggled here.
type UserChangedEvent struct {
	Username   string    `json:"UserName"`
	ID         uuid.UUID `json:"Id"`
	RoleID     uuid.UUID `json:"RoleId"`
	Email      string    `json:"Email"`
	IsBanned   bool      `json:"IsBanned"`
	IsMuted    bool      `json:"IsMuted"`
	AvatarPath string    `json:"AvatarPath"`
}
