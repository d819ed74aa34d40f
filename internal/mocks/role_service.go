package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mkarpovich/identity-server/internal/model"
)

// RoleService is a mock implementation of the handler-level role service.
type RoleService struct {
	mock.Mock
}

func (m *RoleService) CreateRole(ctx context.Context, name model.RoleName) (model.Result, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *RoleService) DeleteRole(ctx context.Context, name model.RoleName) (model.Result, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Result), args.Error(1)
}
