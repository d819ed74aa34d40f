package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkarpovich/identity-server/internal/model"
)

// RoleStore is a mock implementation of model.RoleStore.
type RoleStore struct {
	mock.Mock
}

func (m *RoleStore) Create(ctx context.Context, role model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *RoleStore) Delete(ctx context.Context, name model.RoleName) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *RoleStore) Exists(ctx context.Context, name model.RoleName) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *RoleStore) GetID(ctx context.Context, name model.RoleName) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *RoleStore) AddToUser(ctx context.Context, userID uuid.UUID, name model.RoleName) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *RoleStore) GetForUser(ctx context.Context, userID uuid.UUID) ([]model.RoleName, error) {
	args := m.Called(ctx, userID)

	var names []model.RoleName
	if args.Get(0) != nil {
		names = args.Get(0).([]model.RoleName)
	}
	return names, args.Error(1)
}
