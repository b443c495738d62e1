package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Validation errors for registration input.
var (
	ErrInvalidUsername = errors.New("username must be 3-20 characters of letters, numbers, underscores, and hyphens")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrShortPassword   = errors.New("password must be at least 6 characters long")
)

var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	emailRegexp    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique username
	Email        string    `db:"email"`         // Unique email, stored lowercased
	PasswordHash string    `db:"password_hash"` // Bcrypt hash, never the plaintext
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// AuthUser is the verified identity attached to an authenticated request.
type AuthUser struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// ValidateUsername checks the username against the allowed pattern.
func ValidateUsername(username string) error {
	if !usernameRegexp.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

// ValidateEmail checks the email format.
func ValidateEmail(email string) error {
	if !emailRegexp.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrShortPassword
	}
	return nil
}
