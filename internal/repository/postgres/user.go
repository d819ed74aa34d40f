package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkarpovich/identity-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, user_name, email, password_hash, avatar_path, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, user_name, email, password_hash, avatar_path, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING ` + userColumns

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.AvatarPath,
	).Scan(
		&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash, &saved.AvatarPath,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id), "id")
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_name = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, username), "username")
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, email), "email")
}

// Update persists the mutable subset of a user record: username, email and
// avatar path. Role and claim state is managed through their own stores.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users SET user_name = $2, email = $3, avatar_path = $4, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.AvatarPath,
	).Scan(
		&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash, &saved.AvatarPath,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) scanOne(row pgx.Row, by string) (model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.AvatarPath,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}

	return user, nil
}
