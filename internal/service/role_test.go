package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkarpovich/identity-server/internal/logger"
	servermocks "github.com/mkarpovich/identity-server/internal/mocks"
	"github.com/mkarpovich/identity-server/internal/model"
)

func TestRole_CreateRole_Success(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}
	log := logger.New(0)

	roles.On("Exists", mock.Anything, model.RoleModerator).Return(false, nil)
	roles.On("Create", mock.Anything, mock.MatchedBy(func(r model.Role) bool {
		return r.Name == model.RoleModerator
	})).Return(nil)

	s := NewRoleService(roles, log)

	result, err := s.CreateRole(ctx, model.RoleModerator)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
}

func TestRole_CreateRole_UnknownName(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	s := NewRoleService(roles, logger.New(0))

	_, err := s.CreateRole(ctx, model.RoleName("Wizard"))
	require.ErrorIs(t, err, model.ErrRoleNotFound)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRole_CreateRole_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Exists", mock.Anything, model.RoleAdmin).Return(true, nil)

	s := NewRoleService(roles, logger.New(0))

	result, err := s.CreateRole(ctx, model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, model.ResultCodeRoleExists, result.Errors[0].Code)
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRole_DeleteRole_Success(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Delete", mock.Anything, model.RoleModerator).Return(nil)

	s := NewRoleService(roles, logger.New(0))

	result, err := s.DeleteRole(ctx, model.RoleModerator)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
}

func TestRole_DeleteRole_Missing(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Delete", mock.Anything, model.RoleModerator).Return(model.ErrNotFound)

	s := NewRoleService(roles, logger.New(0))

	result, err := s.DeleteRole(ctx, model.RoleModerator)
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, model.ResultCodeRoleMissing, result.Errors[0].Code)
}

func TestRole_DeleteRole_StoreError(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Delete", mock.Anything, model.RoleModerator).Return(errors.New("db down"))

	s := NewRoleService(roles, logger.New(0))

	result, err := s.DeleteRole(ctx, model.RoleModerator)
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, model.ResultCodeStoreFailure, result.Errors[0].Code)
}

func TestRole_SetupRoles_CreatesMissing(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Exists", mock.Anything, model.RoleAdmin).Return(true, nil)
	roles.On("Exists", mock.Anything, model.RoleModerator).Return(false, nil)
	roles.On("Exists", mock.Anything, model.RoleUser).Return(false, nil)
	roles.On("Create", mock.Anything, mock.MatchedBy(func(r model.Role) bool {
		return r.Name == model.RoleModerator
	})).Return(nil).Once()
	roles.On("Create", mock.Anything, mock.MatchedBy(func(r model.Role) bool {
		return r.Name == model.RoleUser
	})).Return(nil).Once()

	s := NewRoleService(roles, logger.New(0))

	require.NoError(t, s.SetupRoles(ctx))
	roles.AssertExpectations(t)
}

func TestRole_SetupRoles_Idempotent(t *testing.T) {
	ctx := context.Background()
	roles := &servermocks.RoleStore{}

	roles.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	s := NewRoleService(roles, logger.New(0))

	require.NoError(t, s.SetupRoles(ctx))
	require.NoError(t, s.SetupRoles(ctx))
	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
