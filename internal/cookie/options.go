package cookie

// CookieOption defines a function signature for setting cookie client options.
type CookieOption func(*CookieClient)

// WithCookieName sets the cookie name for the client cookie.
func WithCookieName(name string) CookieOption {
	return CookieOption(func(c *CookieClient) {
		c.cookieName = name
	})
}

// WithCookieDomain sets the domain for the client, snapshot, one-time code and XSRF cookies.
func WithCookieDomain(domain string) CookieOption {
	return CookieOption(func(c *CookieClient) {
		c.domain = domain
	})
}
