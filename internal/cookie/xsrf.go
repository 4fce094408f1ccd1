package cookie

import (
	"net/http"
	"time"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/cccteam/rolegate/sessioninfo"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
)

// xsrfToken is the double-submit token. The browser returns it twice, once
// as the XSRF-TOKEN cookie and once copied into the X-XSRF-TOKEN header.
//
// The token is bound to the client ID, not to the session, so a login, a
// logout or a switch to another role keeps the same token.
type xsrfToken struct {
	ClientID uuid.UUID
	Expires  time.Time
}

// stale reports if the token must be reissued for clientID: it belongs to
// another client or expires inside the rewrite window.
func (t xsrfToken) stale(clientID uuid.UUID, now time.Time) bool {
	return t.ClientID != clientID || !now.Before(t.Expires.Add(-types.XSRFReWriteWindow))
}

func (t xsrfToken) validFor(clientID uuid.UUID, now time.Time) bool {
	return clientID != uuid.Nil && t.ClientID == clientID && now.Before(t.Expires)
}

// SetXSRFTokenCookie issues a token for clientID unless the request already
// carries one for it that is not about to expire. It reports if a token was issued.
func (c *CookieClient) SetXSRFTokenCookie(w http.ResponseWriter, r *http.Request, clientID uuid.UUID, cookieExpiration time.Duration) (set bool) {
	now := time.Now()
	if token, found := c.readXSRFCookie(r); found && !token.stale(clientID, now) {
		return false
	}

	if err := c.writeXSRFCookie(w, xsrfToken{ClientID: clientID, Expires: now.Add(cookieExpiration)}); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "CookieClient.writeXSRFCookie()"))

		return false
	}

	return true
}

// HasValidXSRFToken reports if the XSRF cookie is unexpired, belongs to the
// client in the request context, and is echoed unchanged in the XSRF header.
func (c *CookieClient) HasValidXSRFToken(r *http.Request) bool {
	token, found := c.readXSRFCookie(r)
	if !found || !token.validFor(sessioninfo.ClientIDFromRequest(r), time.Now()) {
		return false
	}

	echoed, found := c.decodeXSRF(r, r.Header.Get(types.XSRFHeaderName))
	if !found {
		return false
	}

	return echoed.ClientID == token.ClientID && echoed.Expires.Equal(token.Expires)
}

func (c *CookieClient) writeXSRFCookie(w http.ResponseWriter, token xsrfToken) error {
	encoded, err := c.secureCookie.Encode(types.XSRFCookieName, token)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     types.XSRFCookieName,
		Expires:  token.Expires,
		Value:    encoded,
		Path:     "/",
		Domain:   c.domain,
		Secure:   secureCookie(),
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

func (c *CookieClient) readXSRFCookie(r *http.Request) (xsrfToken, bool) {
	cookie, err := r.Cookie(types.XSRFCookieName)
	if err != nil {
		return xsrfToken{}, false
	}

	return c.decodeXSRF(r, cookie.Value)
}

func (c *CookieClient) decodeXSRF(r *http.Request, value string) (xsrfToken, bool) {
	if value == "" {
		return xsrfToken{}, false
	}

	var token xsrfToken
	if err := c.secureCookie.Decode(types.XSRFCookieName, value, &token); err != nil {
		logger.Req(r).Infof("discarding XSRF token: %s", err)

		return xsrfToken{}, false
	}

	return token, true
}
