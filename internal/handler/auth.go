package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/feedback/internal/auth"
	"github.com/joestump/feedback/internal/store"
)

// AuthHandler provides the registration, login, and logout endpoints.
type AuthHandler struct {
	sessions *scs.SessionManager
	users    store.UserStoreIface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sm *scs.SessionManager, us store.UserStoreIface) *AuthHandler {
	return &AuthHandler{sessions: sm, users: us}
}

// registerPage is the template data for the registration form.
type registerPage struct {
	BasePage
	Form   RegisterForm
	Errors map[string]string
}

// loginPage is the template data for the login form.
type loginPage struct {
	BasePage
	Form   LoginForm
	Errors map[string]string
	Error  string
}

// redirectIfAuthenticated sends an already logged-in visitor to their own
// user page. Returns true when a redirect was written.
func (h *AuthHandler) redirectIfAuthenticated(w http.ResponseWriter, r *http.Request) bool {
	ident, ok := auth.IdentityFromSession(r.Context(), h.sessions)
	if !ok {
		return false
	}
	http.Redirect(w, r, "/users/"+ident.Username, http.StatusFound)
	return true
}

// Home redirects the root path to the registration page.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusFound)
}

// ShowRegister renders the registration form. Authenticated visitors are sent
// to their own page instead.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}
	data := registerPage{Errors: map[string]string{}}
	data.Flash = auth.PopFlash(r.Context(), h.sessions)
	render(w, "register.html", data)
}

// Register processes the registration form. On success the new user is logged
// in and sent to their user page. Validation failures and uniqueness conflicts
// redisplay the form with inline errors; a conflict never leaves a partial row.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := registerFormFromRequest(r)
	if err := form.Validate(); err != nil {
		render(w, "register.html", registerPage{Form: form, Errors: fieldErrors(err)})
		return
	}

	user, err := h.users.Register(r.Context(), form.Username, form.Password, form.Email, form.FirstName, form.LastName, form.IsAdmin)
	if err != nil {
		data := registerPage{Form: form, Errors: map[string]string{}}
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			data.Errors["username"] = "Username taken. Please pick another."
		case errors.Is(err, store.ErrEmailTaken):
			data.Errors["email"] = "Email already registered. Please pick another."
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		render(w, "register.html", data)
		return
	}

	if err := auth.SignIn(r.Context(), h.sessions, user); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// ShowLogin renders the login form. Authenticated visitors are sent to their
// own page instead.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}
	data := loginPage{Errors: map[string]string{}}
	data.Flash = auth.PopFlash(r.Context(), h.sessions)
	render(w, "login.html", data)
}

// Login verifies the submitted credentials. Any failure — unknown username or
// wrong password — redisplays the form with the same generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := loginFormFromRequest(r)
	if err := form.Validate(); err != nil {
		render(w, "login.html", loginPage{Form: form, Errors: fieldErrors(err)})
		return
	}

	user, err := h.users.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			render(w, "login.html", loginPage{Form: form, Errors: map[string]string{}, Error: "Invalid username/password."})
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := auth.SignIn(r.Context(), h.sessions, user); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// Logout clears the session identity and admin flag together and redirects
// home with a goodbye flash.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(r.Context(), h.sessions); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	auth.PutFlash(r.Context(), h.sessions, "info", "Goodbye!")
	http.Redirect(w, r, "/", http.StatusFound)
}
