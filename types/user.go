package types

import "time"

// User represents an account in the system.
// It contains identity and audit metadata; the customization and public
// resolution paths reference users by ID and, for public pages, by username.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique name chosen by the user. It doubles as the
	// key of the user's public profile URL.
	Username string `json:"username" db:"username"`

	// Email is the user's email address, used for login.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
