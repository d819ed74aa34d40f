package model

import (
	"context"

	"github.com/google/uuid"
)

// ClaimStore defines persistence operations for user claims.
type ClaimStore interface {
	GetForUser(ctx context.Context, userID uuid.UUID) ([]Claim, error)
	Add(ctx context.Context, userID uuid.UUID, claim Claim) error
}

// Claim is a typed key-value attribute attached to a user. A user holds at
// most one claim of any given type.
type Claim struct {
	Type  string
	Value string
}
