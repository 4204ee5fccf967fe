package migrations

// feedback.id is an auto-incrementing integer, which every driver spells
// differently. The username foreign key is declared for integrity checking,
// but the application deletes dependent rows itself inside the user-delete
// transaction rather than leaning on ON DELETE CASCADE.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateFeedback, downCreateFeedback)
}

func upCreateFeedback(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS feedback (
    id         BIGSERIAL PRIMARY KEY,
    title      VARCHAR(100) NOT NULL,
    content    TEXT NOT NULL,
    username   VARCHAR(20) NOT NULL REFERENCES users (username),
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS feedback (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    title      VARCHAR(100) NOT NULL,
    content    TEXT NOT NULL,
    username   VARCHAR(20) NOT NULL,
    created_at TIMESTAMP(6) NOT NULL,
    updated_at TIMESTAMP(6) NOT NULL,
    FOREIGN KEY (username) REFERENCES users (username)
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS feedback (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL,
    content    TEXT NOT NULL,
    username   TEXT NOT NULL REFERENCES users (username),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create feedback table: %w", err)
	}
	// MySQL has no IF NOT EXISTS for indexes; the table was created in this
	// same migration so the plain form is safe there.
	idx := `CREATE INDEX IF NOT EXISTS feedback_username_idx ON feedback (username)`
	if dialect == "mysql" {
		idx = `CREATE INDEX feedback_username_idx ON feedback (username)`
	}
	_, err := tx.ExecContext(ctx, idx)
	return err
}

func downCreateFeedback(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS feedback`)
	return err
}
