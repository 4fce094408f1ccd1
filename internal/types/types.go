// Package types defines common types and constants used across the rolegate packages.
package types

import (
	"slices"
	"time"

	"github.com/gofrs/uuid"
)

const (
	// SCClientCookieName is the cookie name of the Secure Cookie identifying the client
	SCClientCookieName = "client"

	// SCClientID is the key for storing the client ID in the Secure Cookie
	SCClientID SCKey = "clientID"

	// SCSameSiteStrict is a key representing sameSiteStrict cookie setting
	SCSameSiteStrict SCKey = "sameSiteStrict"

	// SnapshotCookieName is the cookie name of the browser-local session snapshot
	SnapshotCookieName = "session"

	// OTPCookieName is the cookie name holding the one-time code login between requests
	OTPCookieName = "otp"

	// OTPState is the key for the one-time code login state
	OTPState OTPKey = "state"

	// OTPDestination is the key for the address the pending code was sent to
	OTPDestination OTPKey = "destination"

	// OTPCookieLife is how long a pending one-time code login survives
	OTPCookieLife = 10 * time.Minute

	// XSRFCookieName is the cookie carrying the XSRF token
	XSRFCookieName = "XSRF-TOKEN"

	// XSRFHeaderName is the header a client copies the XSRF cookie value into
	XSRFHeaderName = "X-XSRF-TOKEN"

	// XSRFCookieLife is constant controlling XSRF Cookie expiration
	XSRFCookieLife = time.Hour

	// XSRFReWriteWindow controls rewriting xsrf cookie token if it expires within duration
	XSRFReWriteWindow = 30 * time.Minute
)

type (
	// SCKey is a type for storing values in the client cookie
	SCKey string

	// OTPKey is a type for storing values in the one-time code cookie
	OTPKey string
)

// SafeMethods are Idempotent methods as defined by RFC7231 section 4.2.2.
var SafeMethods = methods([]string{"GET", "HEAD", "OPTIONS", "TRACE"})

type methods []string

func (vals methods) Contain(s string) bool {
	return slices.Contains(vals, s)
}

// ValidClientID checks that the clientID is a valid uuid
func ValidClientID(clientID string) (uuid.UUID, bool) {
	id, err := uuid.FromString(clientID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}
