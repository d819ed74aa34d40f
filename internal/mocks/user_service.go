package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mkarpovich/identity-server/internal/model"
)

// UserService is a mock implementation of the handler-level user service.
type UserService struct {
	mock.Mock
}

func (m *UserService) Create(ctx context.Context, user model.User, password string) (model.User, error) {
	args := m.Called(ctx, user, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) GetRolesByUsername(ctx context.Context, username string) ([]model.RoleName, error) {
	args := m.Called(ctx, username)

	var names []model.RoleName
	if args.Get(0) != nil {
		names = args.Get(0).([]model.RoleName)
	}
	return names, args.Error(1)
}

func (m *UserService) GetRolesByEmail(ctx context.Context, email string) ([]model.RoleName, error) {
	args := m.Called(ctx, email)

	var names []model.RoleName
	if args.Get(0) != nil {
		names = args.Get(0).([]model.RoleName)
	}
	return names, args.Error(1)
}

func (m *UserService) Update(ctx context.Context, candidate model.User, refresh uuid.UUID) (model.Result, error) {
	args := m.Called(ctx, candidate, refresh)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *UserService) PatchAvatarPath(ctx context.Context, userID uuid.UUID, avatarPath string) error {
	args := m.Called(ctx, userID, avatarPath)
	return args.Error(0)
}

func (m *UserService) AssignRole(ctx context.Context, userID uuid.UUID, name model.RoleName) (model.Result, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *UserService) AddClaim(ctx context.Context, userID uuid.UUID, claim model.Claim) (model.Result, error) {
	args := m.Called(ctx, userID, claim)
	return args.Get(0).(model.Result), args.Error(1)
}

func (m *UserService) VerifyCredentials(ctx context.Context, username, password string) (model.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.User), args.Error(1)
}
