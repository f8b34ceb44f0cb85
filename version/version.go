// Package version exposes the library version. The default transport uses
// it for the User-Agent header.
package version

// Version is the library release version. Overridable at build time via
// -ldflags "-X github.com/kbukum/restree/version.Version=...".
var Version = "0.1.0"

// UserAgent returns the default User-Agent value for outgoing requests.
func UserAgent() string {
	return "restree/" + Version
}
