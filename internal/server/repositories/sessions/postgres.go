package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// PostgresRepository implements session storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert relies on the sessions primary key (user_id) for atomic
// write-or-replace; concurrent logins for the same user resolve to
// last-writer-wins at this boundary.
func (r *PostgresRepository) Upsert(ctx context.Context, userID string, refreshToken string, validity time.Duration) error {
	query := `
		INSERT INTO sessions (user_id, refresh_token, expires_at, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id)
		DO UPDATE SET
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, refreshToken, time.Now().Add(validity)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindByUserAndToken requires an exact match on both columns; a signed but
// replaced token therefore fails the lookup.
func (r *PostgresRepository) FindByUserAndToken(ctx context.Context, userID string, refreshToken string) (*models.Session, error) {
	query := `
		SELECT user_id, refresh_token, expires_at, updated_at
		FROM sessions
		WHERE user_id = $1 AND refresh_token = $2
	`

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, userID, refreshToken).Scan(
		&session.UserID, &session.RefreshToken, &session.Expires, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

// DeleteByUser removes the user's session row.
func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	query := `
		DELETE FROM sessions
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
