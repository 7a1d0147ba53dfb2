// Package version holds the version of the SDK and CLI.
package version

// Version is the released version, set at build time with
// -ldflags "-X go.wusul.io/sdk/internal/version.Version=...".
var Version = "0.1.0"
