package store

import (
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
)

// Rebinding is keyed on the driver name alone, so these tests need no live
// server to verify the SQL each driver would receive.
func TestRebindPostgresPlaceholders(t *testing.T) {
	db := sqlx.NewDb(nil, "postgres")
	users := NewUserStore(db)
	feedback := NewFeedbackStore(db)

	got := feedback.q(`INSERT INTO feedback (title, content, username, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id`)
	want := `INSERT INTO feedback (title, content, username, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if got != want {
		t.Errorf("feedback insert rebound to %q, want %q", got, want)
	}

	got = users.q(`SELECT * FROM users WHERE username = ?`)
	if want := `SELECT * FROM users WHERE username = $1`; got != want {
		t.Errorf("user select rebound to %q, want %q", got, want)
	}
}

func TestRebindQuestionDrivers(t *testing.T) {
	for _, driver := range []string{"sqlite", "mysql"} {
		s := NewFeedbackStore(sqlx.NewDb(nil, driver))
		q := `UPDATE feedback SET title = ?, content = ?, updated_at = ? WHERE id = ?`
		if got := s.q(q); got != q {
			t.Errorf("driver %s: query changed to %q", driver, got)
		}
		if strings.Contains(s.q(q), "$") {
			t.Errorf("driver %s: unexpected $ placeholders", driver)
		}
	}
}
