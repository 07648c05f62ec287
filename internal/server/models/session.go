package models

import "time"

// Session is the single current refresh token for a user. The table has a
// unique constraint on UserID, so logging in or refreshing replaces the
// row and silently invalidates any earlier refresh token.
type Session struct {
	UserID       string
	RefreshToken string
	Expires      time.Time
	UpdatedAt    time.Time
}
