package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"

	"github.com/joestump/feedback/internal/store"
)

const (
	SessionUsernameKey = "username"
	SessionIsAdminKey  = "is_admin"
)

// Identity is the authenticated identity carried by a browser session:
// the username plus the admin flag captured at login time.
type Identity struct {
	Username string
	IsAdmin  bool
}

// NewSessionManager creates an SCS session manager backed by the application DB.
// The driver parameter selects the appropriate store: "mysql", "postgres", or
// "sqlite3" (default).
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = secure
	sm.Cookie.SameSite = http.SameSiteLaxMode
	return sm
}

// SignIn rotates the session token and records the user's identity and admin
// flag. Both keys are written together; a session never holds one without the
// other.
func SignIn(ctx context.Context, sm *scs.SessionManager, u *store.User) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, SessionUsernameKey, u.Username)
	sm.Put(ctx, SessionIsAdminKey, u.IsAdmin)
	return nil
}

// SignOut clears both identity keys and rotates the token. The session itself
// survives so a goodbye flash message can still be delivered.
func SignOut(ctx context.Context, sm *scs.SessionManager) error {
	sm.Remove(ctx, SessionUsernameKey)
	sm.Remove(ctx, SessionIsAdminKey)
	return sm.RenewToken(ctx)
}

// IdentityFromSession reads the identity out of the current session.
// ok is false when the session is anonymous.
func IdentityFromSession(ctx context.Context, sm *scs.SessionManager) (Identity, bool) {
	if !sm.Exists(ctx, SessionUsernameKey) {
		return Identity{}, false
	}
	return Identity{
		Username: sm.GetString(ctx, SessionUsernameKey),
		IsAdmin:  sm.GetBool(ctx, SessionIsAdminKey),
	}, true
}
