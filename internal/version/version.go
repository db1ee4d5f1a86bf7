// internal/version/version.go
package version

// Version is the release tag baked into every binary.
const Version = "0.3.0"
