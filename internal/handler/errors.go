package handler

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/joestump/feedback/internal/auth"
)

type errorPage struct {
	BasePage
}

// renderNotFound renders the dedicated 404 page for missing entities. Any
// pending flash is popped here so it shows on this page rather than leaking
// onto the next one.
func renderNotFound(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager) {
	ident, _ := auth.IdentityFromContext(r.Context())
	data := errorPage{BasePage: BasePage{Flash: auth.PopFlash(r.Context(), sm)}}
	if ident.Username != "" {
		data.Identity = &ident
	}
	renderStatus(w, http.StatusNotFound, "404.html", data)
}

// renderUnauthorized renders the dedicated 401 page for authenticated users
// who lack rights to the target resource, including any flash explaining the
// denial.
func renderUnauthorized(w http.ResponseWriter, r *http.Request, sm *scs.SessionManager) {
	ident, _ := auth.IdentityFromContext(r.Context())
	data := errorPage{BasePage: BasePage{Flash: auth.PopFlash(r.Context(), sm)}}
	if ident.Username != "" {
		data.Identity = &ident
	}
	renderStatus(w, http.StatusUnauthorized, "401.html", data)
}
