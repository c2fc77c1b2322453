// Package version holds the build information printed by --version.
package version

// These variables can be overridden at build time using ldflags:
// go build -ldflags "-X jsonpolish/internal/version.Version=1.0.0 -X jsonpolish/internal/version.Commit=abc123"
var (
	// Version is the semantic version of json-polish
	Version = "1.0.0"

	// Commit is the git commit hash (set at build time)
	Commit = "unknown"

	// BuildDate is the build timestamp (set at build time)
	BuildDate = "unknown"
)

// Info returns the version with a short commit suffix when one is known.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Line is the single line printed by --version.
func Line() string {
	return "json-polish version " + Info()
}
