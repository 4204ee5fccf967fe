package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// FullName returns the user's first and last name joined for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *UserStore) q(query string) string { return s.db.Rebind(query) }

// Register hashes the password with bcrypt and inserts the user row.
// Returns ErrUsernameTaken or ErrEmailTaken on a uniqueness violation; the
// insert is a single statement, so a conflict leaves no partial row behind.
func (s *UserStore) Register(ctx context.Context, username, password, email, firstName, lastName string, isAdmin bool) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (username, password_hash, email, first_name, last_name, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), u.Username, u.PasswordHash, u.Email, u.FirstName, u.LastName, u.IsAdmin, u.CreatedAt)
	if err != nil {
		if isUniqueConstraintError(err) {
			if strings.Contains(strings.ToLower(err.Error()), "email") {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return u, nil
}

// Authenticate verifies the username exists and the password matches its
// bcrypt hash. Both failure modes return ErrInvalidCredentials so a caller
// cannot tell which half was wrong.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByUsername returns the user matching username, or ErrNotFound.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, s.q(`SELECT * FROM users WHERE username = ?`), username)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes the user and every feedback row they own in one transaction.
// The cascade is explicit: feedback cannot outlive its user, and a failure at
// any point rolls the whole operation back.
func (s *UserStore) Delete(ctx context.Context, username string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.q(`DELETE FROM feedback WHERE username = ?`), username); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, s.q(`DELETE FROM users WHERE username = ?`), username)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
