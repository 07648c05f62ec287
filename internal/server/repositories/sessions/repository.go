// Package sessions declares the repository contract for the single current
// refresh-token session kept per user.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository defines operations on the per-user session row.
type Repository interface {
	// Upsert writes or atomically replaces the session row for userID with
	// the given refresh token and an expiry of now+validity. Replacing the
	// row invalidates any previously stored refresh token for that user.
	Upsert(ctx context.Context, userID string, refreshToken string, validity time.Duration) error

	// FindByUserAndToken returns the session row matching both userID and
	// the exact refresh token string, or common.ErrorNotFound.
	FindByUserAndToken(ctx context.Context, userID string, refreshToken string) (*models.Session, error)

	// DeleteByUser removes the session row for userID. Deleting a
	// non-existent row is not an error.
	DeleteByUser(ctx context.Context, userID string) error
}
