package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/store"
)

// userPage is the template data for the user detail page.
type userPage struct {
	BasePage
	ProfileUser *store.User
	Feedback    []*store.Feedback

	// CanAct is true when the viewer may mutate this user's records
	// (owner or admin); it gates the edit/delete controls.
	CanAct bool
}

// UsersHandler provides the user detail page and user deletion.
type UsersHandler struct {
	sessions *scs.SessionManager
	users    store.UserStoreIface
	feedback store.FeedbackStoreIface
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(sm *scs.SessionManager, us store.UserStoreIface, fs store.FeedbackStoreIface) *UsersHandler {
	return &UsersHandler{sessions: sm, users: us, feedback: fs}
}

// Show renders GET /users/{username}: the user's details plus their feedback.
// Any authenticated user may view any user page.
func (h *UsersHandler) Show(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderNotFound(w, r, h.sessions)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	feedback, err := h.feedback.ListByOwner(r.Context(), username)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := userPage{
		BasePage:    BasePage{Identity: &ident, Flash: auth.PopFlash(r.Context(), h.sessions)},
		ProfileUser: user,
		Feedback:    feedback,
		CanAct:      store.IsOwnerOrAdmin(ident.Username, ident.IsAdmin, user.Username),
	}
	render(w, "user.html", data)
}

// Delete handles POST /users/{username}/delete: removes the user and all of
// their feedback in one transaction. Owner or admin only.
//
// A non-admin deleting their own account is signed out as part of the
// operation, since their identity no longer exists. An admin keeps their
// session even when deleting their own account — a quirk carried over from
// the flow this replaces.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderNotFound(w, r, h.sessions)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !store.IsOwnerOrAdmin(ident.Username, ident.IsAdmin, user.Username) {
		auth.PutFlash(r.Context(), h.sessions, "danger", "You don't have permission to do that!")
		renderUnauthorized(w, r, h.sessions)
		return
	}

	if err := h.users.Delete(r.Context(), user.Username); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !ident.IsAdmin {
		if err := auth.SignOut(r.Context(), h.sessions); err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
	}

	auth.PutFlash(r.Context(), h.sessions, "info", "User "+username+" and related feedback deleted!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
