package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/model"
)

// RoleService manages the fixed role set. Mutations return a structured
// Result so callers can inspect failure reasons instead of a bare boolean.
type RoleService struct {
	roles  model.RoleStore
	logger *logger.Logger
}

func NewRoleService(roles model.RoleStore, logger *logger.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

// CreateRole creates a role definition from the fixed enumeration.
func (s *RoleService) CreateRole(ctx context.Context, name model.RoleName) (model.Result, error) {
	if !name.Valid() {
		return model.Result{}, model.ErrRoleNotFound
	}

	exists, err := s.roles.Exists(ctx, name)
	if err != nil {
		return model.Result{}, fmt.Errorf("failed to check role existence: %w", err)
	}
	if exists {
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeRoleExists,
			Description: fmt.Sprintf("role %s already exists", name),
		}), nil
	}

	if err := s.roles.Create(ctx, model.Role{ID: uuid.New(), Name: name}); err != nil {
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeStoreFailure,
			Description: err.Error(),
		}), nil
	}

	s.logger.Info("Role service: role created", "role", name)

	return model.Success(), nil
}

// DeleteRole removes a role definition.
func (s *RoleService) DeleteRole(ctx context.Context, name model.RoleName) (model.Result, error) {
	if !name.Valid() {
		return model.Result{}, model.ErrRoleNotFound
	}

	if err := s.roles.Delete(ctx, name); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Failed(model.ResultError{
				Code:        model.ResultCodeRoleMissing,
				Description: fmt.Sprintf("role %s not found", name),
			}), nil
		}
		return model.Failed(model.ResultError{
			Code:        model.ResultCodeStoreFailure,
			Description: err.Error(),
		}), nil
	}

	s.logger.Info("Role service: role deleted", "role", name)

	return model.Success(), nil
}

// SetupRoles ensures every role in the fixed enumeration exists. Roles that
// are already present are left untouched, so it is safe on every startup.
func (s *RoleService) SetupRoles(ctx context.Context) error {
	for _, name := range model.AllRoles() {
		exists, err := s.roles.Exists(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to check role %s: %w", name, err)
		}
		if exists {
			continue
		}

		if err := s.roles.Create(ctx, model.Role{ID: uuid.New(), Name: name}); err != nil {
			return fmt.Errorf("failed to create role %s: %w", name, err)
		}

		s.logger.Info("Role service: role set up", "role", name)
	}

	return nil
}
