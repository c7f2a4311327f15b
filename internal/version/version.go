// Package version holds build-time version information.
package version

// Set via -ldflags at release build time.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit the build was produced from.
	Commit = "unknown"
)
