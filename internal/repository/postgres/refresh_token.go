package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkarpovich/identity-server/internal/model"
)

var _ model.RefreshTokenStore = (*RefreshTokenRepository)(nil)

type RefreshTokenRepository struct {
	db *Connection
}

func NewRefreshTokenRepository(db *Connection) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, token model.RefreshToken) error {
	const query = `INSERT INTO refresh_tokens (token, user_id, creation_date) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, token.Token, token.UserID, token.CreationDate)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByID(ctx context.Context, token uuid.UUID) (model.RefreshToken, error) {
	const query = `SELECT token, user_id, creation_date FROM refresh_tokens WHERE token = $1`

	var rt model.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(&rt.Token, &rt.UserID, &rt.CreationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RefreshToken{}, model.ErrNotFound
		}
		return model.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return rt, nil
}

func (r *RefreshTokenRepository) DeleteByID(ctx context.Context, token uuid.UUID) error {
	const query = `DELETE FROM refresh_tokens WHERE token = $1`

	tag, err := r.db.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteAllByUser removes every token owned by the user and returns the
// number of removed rows. Zero is a valid result.
func (r *RefreshTokenRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM refresh_tokens WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh tokens by user: %w", err)
	}
	return tag.RowsAffected(), nil
}
