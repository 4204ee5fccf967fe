package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/store"
)

// feedbackFormPage is the template data for the add/edit feedback forms.
type feedbackFormPage struct {
	BasePage
	Owner    string
	Feedback *store.Feedback
	Form     FeedbackForm
	Errors   map[string]string
}

// FeedbackHandler provides the feedback CRUD endpoints.
type FeedbackHandler struct {
	sessions *scs.SessionManager
	users    store.UserStoreIface
	feedback store.FeedbackStoreIface
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(sm *scs.SessionManager, us store.UserStoreIface, fs store.FeedbackStoreIface) *FeedbackHandler {
	return &FeedbackHandler{sessions: sm, users: us, feedback: fs}
}

// resolveOwner loads the user named in the URL and checks the viewer may act
// on their records. Writes the error response itself when it returns nil.
func (h *FeedbackHandler) resolveOwner(w http.ResponseWriter, r *http.Request) *store.User {
	ident, _ := auth.IdentityFromContext(r.Context())
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderNotFound(w, r, h.sessions)
			return nil
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}

	if !store.IsOwnerOrAdmin(ident.Username, ident.IsAdmin, user.Username) {
		auth.PutFlash(r.Context(), h.sessions, "danger", "You don't have permission to add feedback under username "+username)
		renderUnauthorized(w, r, h.sessions)
		return nil
	}
	return user
}

// resolveFeedback loads the feedback row named in the URL and checks the
// viewer may act on it. Writes the error response itself when it returns nil.
func (h *FeedbackHandler) resolveFeedback(w http.ResponseWriter, r *http.Request) *store.Feedback {
	ident, _ := auth.IdentityFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		renderNotFound(w, r, h.sessions)
		return nil
	}

	fb, err := h.feedback.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderNotFound(w, r, h.sessions)
			return nil
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil
	}

	if !store.IsOwnerOrAdmin(ident.Username, ident.IsAdmin, fb.Username) {
		renderUnauthorized(w, r, h.sessions)
		return nil
	}
	return fb
}

// New renders GET /users/{username}/feedback/add. Owner or admin only.
func (h *FeedbackHandler) New(w http.ResponseWriter, r *http.Request) {
	owner := h.resolveOwner(w, r)
	if owner == nil {
		return
	}
	ident, _ := auth.IdentityFromContext(r.Context())
	data := feedbackFormPage{
		BasePage: BasePage{Identity: &ident, Flash: auth.PopFlash(r.Context(), h.sessions)},
		Owner:    owner.Username,
		Errors:   map[string]string{},
	}
	render(w, "feedback_new.html", data)
}

// Create handles POST /users/{username}/feedback/add. The new row is owned by
// the user named in the URL, not the acting session, so an admin can file
// feedback under another user's name.
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := h.resolveOwner(w, r)
	if owner == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ident, _ := auth.IdentityFromContext(r.Context())
	form := feedbackFormFromRequest(r)
	if err := form.Validate(); err != nil {
		data := feedbackFormPage{
			BasePage: BasePage{Identity: &ident},
			Owner:    owner.Username,
			Form:     form,
			Errors:   fieldErrors(err),
		}
		render(w, "feedback_new.html", data)
		return
	}

	if _, err := h.feedback.Create(r.Context(), owner.Username, form.Title, form.Content); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.PutFlash(r.Context(), h.sessions, "success", "New feedback added!")
	http.Redirect(w, r, "/users/"+owner.Username, http.StatusSeeOther)
}

// Edit renders GET /feedback/{id}/update with the current values filled in.
func (h *FeedbackHandler) Edit(w http.ResponseWriter, r *http.Request) {
	fb := h.resolveFeedback(w, r)
	if fb == nil {
		return
	}
	ident, _ := auth.IdentityFromContext(r.Context())
	data := feedbackFormPage{
		BasePage: BasePage{Identity: &ident, Flash: auth.PopFlash(r.Context(), h.sessions)},
		Owner:    fb.Username,
		Feedback: fb,
		Form:     FeedbackForm{Title: fb.Title, Content: fb.Content},
		Errors:   map[string]string{},
	}
	render(w, "feedback_edit.html", data)
}

// Update handles POST /feedback/{id}/update.
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	fb := h.resolveFeedback(w, r)
	if fb == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	ident, _ := auth.IdentityFromContext(r.Context())
	form := feedbackFormFromRequest(r)
	if err := form.Validate(); err != nil {
		data := feedbackFormPage{
			BasePage: BasePage{Identity: &ident},
			Owner:    fb.Username,
			Feedback: fb,
			Form:     form,
			Errors:   fieldErrors(err),
		}
		render(w, "feedback_edit.html", data)
		return
	}

	if _, err := h.feedback.Update(r.Context(), fb.ID, form.Title, form.Content); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.PutFlash(r.Context(), h.sessions, "success", "Your feedback has been updated!")
	http.Redirect(w, r, "/users/"+fb.Username, http.StatusSeeOther)
}

// Delete handles POST /feedback/{id}/delete.
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fb := h.resolveFeedback(w, r)
	if fb == nil {
		return
	}

	if err := h.feedback.Delete(r.Context(), fb.ID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.PutFlash(r.Context(), h.sessions, "success", "Feedback deleted!")
	http.Redirect(w, r, "/users/"+fb.Username, http.StatusSeeOther)
}
