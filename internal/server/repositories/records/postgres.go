package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// PostgresRepository implements record storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a record row; the caller supplies the generated ID.
func (r *PostgresRepository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	query := `
		INSERT INTO records (id, user_id, title, encrypted_secret, site, username, login_email, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		record.ID, record.UserID, record.Title, record.EncryptedSecret,
		record.Site, record.Username, record.LoginEmail, record.Category, record.Notes).
		Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// ListByUser returns every record owned by userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Record, error) {
	query := `
		SELECT id, user_id, title, encrypted_secret, site, username, login_email, category, notes, created_at, updated_at
		FROM records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Record
	for rows.Next() {
		var item models.Record
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.EncryptedSecret,
			&item.Site, &item.Username, &item.LoginEmail, &item.Category, &item.Notes,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByID scopes the lookup to the owning user so one user can never read
// another user's row through this path.
func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Record, error) {
	query := `
		SELECT id, user_id, title, encrypted_secret, site, username, login_email, category, notes, created_at, updated_at
		FROM records
		WHERE id = $1 AND user_id = $2
	`

	record := &models.Record{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&record.ID, &record.UserID, &record.Title, &record.EncryptedSecret,
		&record.Site, &record.Username, &record.LoginEmail, &record.Category, &record.Notes,
		&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

// UpdateSecret replaces the encrypted secret of the user's record.
func (r *PostgresRepository) UpdateSecret(ctx context.Context, userID, id, encryptedSecret string) error {
	query := `
		UPDATE records
		SET encrypted_secret = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3
	`

	res, err := r.db.ExecContext(ctx, query, encryptedSecret, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the user's record.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM records
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
