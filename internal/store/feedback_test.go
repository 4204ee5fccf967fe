package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joestump/feedback/internal/store"
)

func seedOwner(t *testing.T, us *store.UserStore, username string) {
	t.Helper()
	_, err := us.Register(context.Background(), username, "pw", username+"@example.com", "Test", "User", false)
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
}

func TestFeedbackStore_Create(t *testing.T) {
	us, fs := newTestEnv(t)
	ctx := context.Background()
	seedOwner(t, us, "alice")

	fb, err := fs.Create(ctx, "alice", "A title", "Some content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fb.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if fb.Title != "A title" {
		t.Errorf("title = %q, want %q", fb.Title, "A title")
	}
	if fb.Username != "alice" {
		t.Errorf("username = %q, want %q", fb.Username, "alice")
	}
}

func TestFeedbackStore_Create_AssignsDistinctIDs(t *testing.T) {
	us, fs := newTestEnv(t)
	ctx := context.Background()
	seedOwner(t, us, "alice")

	first, err := fs.Create(ctx, "alice", "First", "one")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := fs.Create(ctx, "alice", "Second", "two")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("both rows got id %d", first.ID)
	}
}

func TestFeedbackStore_GetByID_NotFound(t *testing.T) {
	_, fs := newTestEnv(t)

	_, err := fs.GetByID(context.Background(), 9999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID(9999) = %v, want ErrNotFound", err)
	}
}

func TestFeedbackStore_ListByOwner(t *testing.T) {
	us, fs := newTestEnv(t)
	ctx := context.Background()
	seedOwner(t, us, "alice")
	seedOwner(t, us, "bob")

	if _, err := fs.Create(ctx, "alice", "Old", "first"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := fs.Create(ctx, "alice", "New", "second"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := fs.Create(ctx, "bob", "Bob's", "other"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, err := fs.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	// Newest first.
	if items[0].Title != "New" || items[1].Title != "Old" {
		t.Errorf("order = [%q, %q], want [New, Old]", items[0].Title, items[1].Title)
	}
}

func TestFeedbackStore_Update(t *testing.T) {
	us, fs := newTestEnv(t)
	ctx := context.Background()
	seedOwner(t, us, "alice")

	fb, err := fs.Create(ctx, "alice", "Before", "old content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := fs.Update(ctx, fb.ID, "After", "new content")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "After" || updated.Content != "new content" {
		t.Errorf("updated = %q/%q, want After/new content", updated.Title, updated.Content)
	}
	if updated.Username != "alice" {
		t.Errorf("owner changed to %q", updated.Username)
	}
}

func TestFeedbackStore_Update_NotFound(t *testing.T) {
	_, fs := newTestEnv(t)

	_, err := fs.Update(context.Background(), 9999, "x", "y")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update(9999) = %v, want ErrNotFound", err)
	}
}

func TestFeedbackStore_Delete(t *testing.T) {
	us, fs := newTestEnv(t)
	ctx := context.Background()
	seedOwner(t, us, "alice")

	fb, err := fs.Create(ctx, "alice", "Doomed", "content")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := fs.Delete(ctx, fb.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := fs.GetByID(ctx, fb.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := fs.Delete(ctx, fb.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}
