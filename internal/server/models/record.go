package models

import "time"

// Record is one stored credential. EncryptedSecret holds the cipher
// envelope (nonce embedded); Secret is only populated on the way out of
// the service layer after decryption and is never stored.
type Record struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	EncryptedSecret string    `json:"-"`
	Secret          string    `json:"secret"`
	Site            string    `json:"site,omitempty"`
	Username        string    `json:"username,omitempty"`
	LoginEmail      string    `json:"login_email,omitempty"`
	Category        string    `json:"category,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
