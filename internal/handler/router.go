package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/store"
	"github.com/joestump/feedback/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthMiddleware *auth.Middleware
	UserStore      store.UserStoreIface
	FeedbackStore  store.FeedbackStoreIface
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticSub))))

	authH := NewAuthHandler(deps.SessionManager, deps.UserStore)
	usersH := NewUsersHandler(deps.SessionManager, deps.UserStore, deps.FeedbackStore)
	feedbackH := NewFeedbackHandler(deps.SessionManager, deps.UserStore, deps.FeedbackStore)

	// Anonymous entry points. Register and login bounce authenticated
	// visitors to their own user page.
	r.Get("/", authH.Home)
	r.Get("/register", authH.ShowRegister)
	r.Post("/register", authH.Register)
	r.Get("/login", authH.ShowLogin)
	r.Post("/login", authH.Login)
	r.Get("/logout", authH.Logout)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.RequireAuth)

		r.Get("/users/{username}", usersH.Show)
		r.Post("/users/{username}/delete", usersH.Delete)

		r.Get("/users/{username}/feedback/add", feedbackH.New)
		r.Post("/users/{username}/feedback/add", feedbackH.Create)
		r.Get("/feedback/{id}/update", feedbackH.Edit)
		r.Post("/feedback/{id}/update", feedbackH.Update)
		r.Post("/feedback/{id}/delete", feedbackH.Delete)
	})

	// Unmatched paths get the dedicated 404 page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(w, r, deps.SessionManager)
	})

	return r
}
