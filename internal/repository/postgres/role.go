package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkarpovich/identity-server/internal/model"
)

var _ model.RoleStore = (*RoleRepository)(nil)

type RoleRepository struct {
	db *Connection
}

func NewRoleRepository(db *Connection) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role model.Role) error {
	const query = `INSERT INTO roles (id, name) VALUES ($1, $2)`

	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	if _, err := r.db.Exec(ctx, query, role.ID, role.Name); err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, name model.RoleName) error {
	const query = `DELETE FROM roles WHERE name = $1`

	tag, err := r.db.Exec(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) Exists(ctx context.Context, name model.RoleName) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}
	return exists, nil
}

func (r *RoleRepository) GetID(ctx context.Context, name model.RoleName) (uuid.UUID, error) {
	const query = `SELECT id FROM roles WHERE name = $1`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get role id: %w", err)
	}
	return id, nil
}

func (r *RoleRepository) AddToUser(ctx context.Context, userID uuid.UUID, name model.RoleName) error {
	const query = `
        INSERT INTO user_roles (user_id, role_id)
        SELECT $1, id FROM roles WHERE name = $2
        ON CONFLICT DO NOTHING
    `

	tag, err := r.db.Exec(ctx, query, userID, name)
	if err != nil {
		return fmt.Errorf("failed to add user to role: %w", err)
	}
	_ = tag // assigning an already held role is a no-op
	return nil
}

func (r *RoleRepository) GetForUser(ctx context.Context, userID uuid.UUID) ([]model.RoleName, error) {
	const query = `
        SELECT r.name FROM roles r
        JOIN user_roles ur ON ur.role_id = r.id
        WHERE ur.user_id = $1
        ORDER BY r.name
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user: %w", err)
	}
	defer rows.Close()

	var names []model.RoleName
	for rows.Next() {
		var name model.RoleName
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan role name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roles for user: %w", err)
	}

	return names, nil
}
