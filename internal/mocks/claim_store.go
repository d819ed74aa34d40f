package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkarpovich/identity-server/internal/model"
)

// ClaimStore is a mock implementation of model.ClaimStore.
type ClaimStore struct {
	mock.Mock
}

func (m *ClaimStore) GetForUser(ctx context.Context, userID uuid.UUID) ([]model.Claim, error) {
	args := m.Called(ctx, userID)

	var claims []model.Claim
	if args.Get(0) != nil {
		claims = args.Get(0).([]model.Claim)
	}
	return claims, args.Error(1)
}

func (m *ClaimStore) Add(ctx context.Context, userID uuid.UUID, claim model.Claim) error {
	args := m.Called(ctx, userID, claim)
	return args.Error(0)
}
