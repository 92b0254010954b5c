//go:build insecurecookie

package cookie

// Used for local development over plain http
func secureCookie() bool {
	return false
}
