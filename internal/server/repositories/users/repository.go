// Package users declares the repository contract for account persistence.
package users

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/server/models"
)

// Repository defines operations for creating and looking up user accounts.
type Repository interface {
	// Create inserts a new user and returns it with the generated ID.
	// A duplicate email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks up a user by case-normalized email.
	// Returns common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks up a user by primary key.
	// Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
