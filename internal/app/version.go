package app

import "fmt"

// Build metadata, injected with
// -ldflags "-X github.com/heartmarshall/cookbook-backend/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for /health and startup logs.
// Local builds without ldflags report just the version.
func BuildVersion() string {
	if Commit == "" {
		return Version
	}
	if BuildTime == "" {
		return fmt.Sprintf("%s+%s", Version, Commit)
	}
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
