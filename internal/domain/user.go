package domain

import "time"

type User struct {
	ID        string
	Username  string
	Password  string // bcrypt hash, never the plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// NewUser is what the service hands to the repository on registration.
type NewUser struct {
	Username     string
	PasswordHash string
}

// UserUpdate carries a partial update. A nil field is left untouched.
type UserUpdate struct {
	ID       string
	Username *string
	Password *string // plaintext, hashed by the service
}
