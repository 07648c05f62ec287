// Package records declares the repository contract for stored credential
// records. Secret values arrive here already encrypted; this layer never
// sees plaintext.
package records

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository defines owner-scoped CRUD for credential records. Every
// operation takes the owning userID and touches only that user's rows.
type Repository interface {
	// Create inserts a new record and returns it with timestamps set.
	Create(ctx context.Context, record *models.Record) (*models.Record, error)

	// ListByUser returns all records owned by userID.
	ListByUser(ctx context.Context, userID string) ([]*models.Record, error)

	// GetByID returns the record only if it belongs to userID,
	// otherwise common.ErrorNotFound.
	GetByID(ctx context.Context, userID, id string) (*models.Record, error)

	// UpdateSecret replaces the encrypted secret of the user's record.
	// Returns common.ErrorNotFound when no row matched.
	UpdateSecret(ctx context.Context, userID, id, encryptedSecret string) error

	// Delete removes the user's record. Returns common.ErrorNotFound when
	// no row matched.
	Delete(ctx context.Context, userID, id string) error
}
