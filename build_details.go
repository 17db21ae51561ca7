package awesomepages

import "fmt"

var (
	// version, commit and buildTime are set via ldflags by release builds.
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or 'unknown'.
func BuildTime() string {
	return buildTime
}

// BuildInfo returns the one-line description printed by the version command.
func BuildInfo() string {
	if commit == "unknown" {
		return fmt.Sprintf("awesomepages %s", version)
	}
	return fmt.Sprintf("awesomepages %s (commit %s, built %s)", version, commit, buildTime)
}
