package store

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials is returned on any failed login attempt. It is
	// deliberately the same for an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username/password")
)

// UserStoreIface exposes all user data operations.
// Handlers never query the DB directly; all access goes through this interface.
type UserStoreIface interface {
	Register(ctx context.Context, username, password, email, firstName, lastName string, isAdmin bool) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, username string) error
}

// FeedbackStoreIface exposes all feedback data operations.
type FeedbackStoreIface interface {
	Create(ctx context.Context, username, title, content string) (*Feedback, error)
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	ListByOwner(ctx context.Context, username string) ([]*Feedback, error)
	Update(ctx context.Context, id int64, title, content string) (*Feedback, error)
	Delete(ctx context.Context, id int64) error
}

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
