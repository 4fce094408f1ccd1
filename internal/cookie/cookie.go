// Package cookie reads and writes the encrypted cookies of a client: its
// identity, its browser-local session snapshot, a pending one-time code login
// and the XSRF token bound to its identity.
package cookie

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cccteam/logger"
	"github.com/cccteam/rolegate/internal/types"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
)

type CookieClient struct {
	secureCookie *securecookie.SecureCookie
	cookieName   string
	domain       string
}

// NewCookieClient returns a CookieClient keyed by the base64 master cookieKey.
func NewCookieClient(cookieKey string, options ...CookieOption) (*CookieClient, error) {
	sc, err := NewSecureCookie(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "NewSecureCookie()")
	}

	c := &CookieClient{
		secureCookie: sc,
		cookieName:   types.SCClientCookieName,
	}
	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

func (c *CookieClient) NewClientCookie(w http.ResponseWriter, sameSiteStrict bool, clientID uuid.UUID) (map[types.SCKey]string, error) {
	cval := map[types.SCKey]string{
		types.SCClientID: clientID.String(),
	}

	if err := c.WriteClientCookie(w, sameSiteStrict, cval); err != nil {
		return nil, errors.Wrap(err, "CookieClient.WriteClientCookie()")
	}

	return cval, nil
}

func (c *CookieClient) ReadClientCookie(r *http.Request) (map[types.SCKey]string, bool) {
	cval := make(map[types.SCKey]string)

	cookie, err := r.Cookie(c.cookieName)
	if err != nil {
		return cval, false
	}
	if err := c.secureCookie.Decode(c.cookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "secureCookie.Decode()"))

		return cval, false
	}

	return cval, true
}

func (c *CookieClient) WriteClientCookie(w http.ResponseWriter, sameSiteStrict bool, cval map[types.SCKey]string) error {
	cval[types.SCSameSiteStrict] = strconv.FormatBool(sameSiteStrict)
	encoded, err := c.secureCookie.Encode(c.cookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	sameSite := http.SameSiteStrictMode
	if !sameSiteStrict {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName,
		Value:    encoded,
		Path:     "/",
		Domain:   c.domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: sameSite,
	})

	return nil
}

// ReadOTPCookie returns a pending one-time code login.
func (c *CookieClient) ReadOTPCookie(r *http.Request) (map[types.OTPKey]string, bool) {
	cookie, err := r.Cookie(types.OTPCookieName)
	if err != nil {
		return nil, false
	}

	cval := make(map[types.OTPKey]string)
	if err := c.secureCookie.Decode(types.OTPCookieName, cookie.Value, &cval); err != nil {
		logger.Req(r).Error(errors.Wrap(err, "securecookie.Decode()"))

		return nil, false
	}

	return cval, true
}

func (c *CookieClient) WriteOTPCookie(w http.ResponseWriter, cval map[types.OTPKey]string) error {
	encoded, err := c.secureCookie.Encode(types.OTPCookieName, cval)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     types.OTPCookieName,
		Expires:  time.Now().Add(types.OTPCookieLife),
		Value:    encoded,
		Path:     "/login/member",
		Domain:   c.domain,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

func (c *CookieClient) DeleteOTPCookie(w http.ResponseWriter) {
	c.deleteCookie(w, types.OTPCookieName, "/login/member")
}

func (c *CookieClient) deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Domain:   c.domain,
		MaxAge:   -1,
		Secure:   secureCookie(),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
