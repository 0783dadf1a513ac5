package models

import "time"

// User is a stored credential. Email is kept normalised (trimmed,
// lower-case); PasswordHash is a bcrypt hash and must never leave the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
