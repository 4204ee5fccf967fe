package store_test

import (
	"testing"

	"github.com/joestump/feedback/internal/store"
)

func TestIsOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name     string
		session  string
		isAdmin  bool
		owner    string
		expected bool
	}{
		{"owner acting on own record", "alice", false, "alice", true},
		{"non-owner denied", "bob", false, "alice", false},
		{"admin acting on own record", "alice", true, "alice", true},
		{"admin acting on someone else's record", "root", true, "alice", true},
		{"admin with empty owner", "root", true, "", true},
		{"case-sensitive usernames", "Alice", false, "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.IsOwnerOrAdmin(tt.session, tt.isAdmin, tt.owner)
			if got != tt.expected {
				t.Errorf("IsOwnerOrAdmin(%q, %v, %q) = %v, want %v",
					tt.session, tt.isAdmin, tt.owner, got, tt.expected)
			}
		})
	}
}
