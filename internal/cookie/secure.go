//go:build !insecurecookie

package cookie

// secureCookie sets the Secure attribute on every cookie written.
func secureCookie() bool {
	return true
}
