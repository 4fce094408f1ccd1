//go:build insecurecookie

package cookie

// secureCookie leaves the Secure attribute off so cookies work over plain
// http during local development.
func secureCookie() bool {
	return false
}
