package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkarpovich/identity-server/internal/model"
)

var _ model.ClaimStore = (*ClaimRepository)(nil)

type ClaimRepository struct {
	db *Connection
}

func NewClaimRepository(db *Connection) *ClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) GetForUser(ctx context.Context, userID uuid.UUID) ([]model.Claim, error) {
	const query = `SELECT claim_type, claim_value FROM user_claims WHERE user_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims for user: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var claim model.Claim
		if err := rows.Scan(&claim.Type, &claim.Value); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, claim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read claims for user: %w", err)
	}

	return claims, nil
}

func (r *ClaimRepository) Add(ctx context.Context, userID uuid.UUID, claim model.Claim) error {
	const query = `INSERT INTO user_claims (user_id, claim_type, claim_value) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, userID, claim.Type, claim.Value); err != nil {
		var pgErr *pgconn.PgError
		// unique_violation on (user_id, claim_type)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateClaim
		}
		return fmt.Errorf("failed to add claim: %w", err)
	}
	return nil
}
