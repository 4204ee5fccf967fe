package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/store"
	"github.com/joestump/feedback/internal/testutil"
)

func newSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	db := testutil.NewTestDB(t)
	sm := scs.New()
	sm.Store = sqlite3store.New(db.DB)
	sm.Lifetime = time.Hour
	return sm
}

// withSession runs fn inside a request wrapped by LoadAndSave so session
// operations have a live session context.
func withSession(t *testing.T, sm *scs.SessionManager, fn func(r *http.Request)) {
	t.Helper()
	h := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestSignInSetsBothKeys(t *testing.T) {
	sm := newSessionManager(t)

	withSession(t, sm, func(r *http.Request) {
		ctx := r.Context()
		if _, ok := auth.IdentityFromSession(ctx, sm); ok {
			t.Fatal("fresh session should be anonymous")
		}

		u := &store.User{Username: "alice", IsAdmin: true}
		if err := auth.SignIn(ctx, sm, u); err != nil {
			t.Fatalf("SignIn: %v", err)
		}

		ident, ok := auth.IdentityFromSession(ctx, sm)
		if !ok {
			t.Fatal("expected authenticated identity")
		}
		if ident.Username != "alice" || !ident.IsAdmin {
			t.Errorf("identity = %+v, want alice/admin", ident)
		}
	})
}

func TestSignOutClearsBothKeys(t *testing.T) {
	sm := newSessionManager(t)

	withSession(t, sm, func(r *http.Request) {
		ctx := r.Context()
		if err := auth.SignIn(ctx, sm, &store.User{Username: "alice", IsAdmin: true}); err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if err := auth.SignOut(ctx, sm); err != nil {
			t.Fatalf("SignOut: %v", err)
		}

		if _, ok := auth.IdentityFromSession(ctx, sm); ok {
			t.Error("session should be anonymous after SignOut")
		}
		if sm.Exists(ctx, auth.SessionIsAdminKey) {
			t.Error("admin flag must not outlive the identity")
		}
	})
}

func TestFlashRoundTrip(t *testing.T) {
	sm := newSessionManager(t)

	withSession(t, sm, func(r *http.Request) {
		ctx := r.Context()
		if f := auth.PopFlash(ctx, sm); f != nil {
			t.Fatalf("unexpected flash %+v", f)
		}

		auth.PutFlash(ctx, sm, "info", "Goodbye!")
		f := auth.PopFlash(ctx, sm)
		if f == nil || f.Type != "info" || f.Message != "Goodbye!" {
			t.Fatalf("flash = %+v, want info/Goodbye!", f)
		}

		// A flash is one-time.
		if f := auth.PopFlash(ctx, sm); f != nil {
			t.Errorf("flash should be consumed, got %+v", f)
		}
	})
}
