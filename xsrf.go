package rolegate

import (
	"net/http"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/sessioninfo"
)

// SetXSRFToken issues the XSRF token of the client identified by
// StartSession, which must run first. A state-changing request that arrived
// without a token is sent back to its own location with 307 so the client
// repeats it carrying the new token.
func (g *Gate) SetXSRFToken(next http.Handler) http.Handler {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		issued := g.cookie.SetXSRFTokenCookie(w, r, sessioninfo.ClientIDFromRequest(r), types.XSRFCookieLife)
		if issued && changesState(r) {
			http.Redirect(w, r, r.URL.RequestURI(), http.StatusTemporaryRedirect)

			return nil
		}

		next.ServeHTTP(w, r)

		return nil
	})
}

// ValidateXSRFToken rejects a state-changing request whose echoed token does
// not match the client's XSRF cookie.
func (g *Gate) ValidateXSRFToken(next http.Handler) http.Handler {
	return g.handle(func(w http.ResponseWriter, r *http.Request) error {
		if changesState(r) && !g.cookie.HasValidXSRFToken(r) {
			logger.FromCtx(r.Context()).Infof("rejected %s %s: missing or stale XSRF token", r.Method, r.URL.Path)

			return httpio.NewEncoder(w).ClientMessage(r.Context(), httpio.NewForbiddenMessage("invalid XSRF token"))
		}

		next.ServeHTTP(w, r)

		return nil
	})
}

func changesState(r *http.Request) bool {
	return !types.SafeMethods.Contain(r.Method)
}
