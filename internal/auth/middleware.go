package auth

import (
	"context"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Middleware provides HTTP middleware for authentication.
type Middleware struct {
	sessions *scs.SessionManager
}

// NewMiddleware creates a new auth Middleware.
func NewMiddleware(sm *scs.SessionManager) *Middleware {
	return &Middleware{sessions: sm}
}

// RequireAuth flashes a prompt and redirects to /login when the session is
// anonymous. On success it sets the session Identity on the request context.
//
// The identity is read from the session only; it is not re-checked against
// the users table. An admin who deletes their own account keeps a working
// admin session until they log out, matching the documented behavior of the
// user-delete flow.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFromSession(r.Context(), m.sessions)
		if !ok {
			PutFlash(r.Context(), m.sessions, "danger", "Please login or register first!")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext retrieves the authenticated identity placed on the
// context by RequireAuth. ok is false on anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityContextKey).(Identity)
	return ident, ok
}
