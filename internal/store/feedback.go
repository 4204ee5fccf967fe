package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// Feedback represents a row in the feedback table. Username is the owner.
type Feedback struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FeedbackStore is the sqlx-backed implementation of FeedbackStoreIface.
type FeedbackStore struct {
	db *sqlx.DB
}

func NewFeedbackStore(db *sqlx.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *FeedbackStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new feedback row owned by username. The owner must exist;
// the foreign key rejects orphan rows.
func (s *FeedbackStore) Create(ctx context.Context, username, title, content string) (*Feedback, error) {
	now := time.Now().UTC()

	// lib/pq does not implement LastInsertId, so PostgreSQL takes the
	// RETURNING path.
	if s.db.DriverName() == "postgres" {
		var id int64
		err := s.db.QueryRowContext(ctx, s.q(`
			INSERT INTO feedback (title, content, username, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?) RETURNING id
		`), title, content, username, now, now).Scan(&id)
		if err != nil {
			return nil, err
		}
		return s.GetByID(ctx, id)
	}

	res, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO feedback (title, content, username, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`), title, content, username, now, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// GetByID returns the feedback matching id, or ErrNotFound.
func (s *FeedbackStore) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	var f Feedback
	err := s.db.GetContext(ctx, &f, s.q(`SELECT * FROM feedback WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByOwner returns all feedback owned by username, newest first.
func (s *FeedbackStore) ListByOwner(ctx context.Context, username string) ([]*Feedback, error) {
	var items []*Feedback
	err := s.db.SelectContext(ctx, &items, s.q(`
		SELECT * FROM feedback WHERE username = ? ORDER BY id DESC
	`), username)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update modifies an existing feedback's title and content. The owner is
// immutable after creation.
func (s *FeedbackStore) Update(ctx context.Context, id int64, title, content string) (*Feedback, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE feedback SET title = ?, content = ?, updated_at = ? WHERE id = ?
	`), title, content, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(ctx, id)
}

// Delete removes a feedback row by ID. Returns ErrNotFound if no row matched.
func (s *FeedbackStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM feedback WHERE id = ?`), id)
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
	return nil
}
