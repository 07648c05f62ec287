// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account row. PasswordHash is the opaque bcrypt hash and is
// never serialized to API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
