package model

import (
	"context"

	"github.com/google/uuid"
)

// RoleStore defines persistence operations for roles and user-role links.
type RoleStore interface {
	Create(ctx context.Context, role Role) error
	Delete(ctx context.Context, name RoleName) error
	Exists(ctx context.Context, name RoleName) (bool, error)
	GetID(ctx context.Context, name RoleName) (uuid.UUID, error)
	AddToUser(ctx context.Context, userID uuid.UUID, name RoleName) error
	GetForUser(ctx context.Context, userID uuid.UUID) ([]RoleName, error)
}

// RoleName enumerates the fixed role set. Roles are not user-defined.
type RoleName string

const (
	RoleAdmin     RoleName = "Admin"
	RoleModerator RoleName = "Moderator"
	RoleUser      RoleName = "User"
)

// DefaultRole is assigned to every newly registered user.
const DefaultRole = RoleUser

// AllRoles returns the fixed enumeration in a stable order.
func AllRoles() []RoleName {
	return []RoleName{RoleAdmin, RoleModerator, RoleUser}
}

// Valid reports whether the name belongs to the fixed enumeration.
func (n RoleName) Valid() bool {
	switch n {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

// Role represents a stored role definition.
type Role struct {
	ID   uuid.UUID
	Name RoleName
}
