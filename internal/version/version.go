package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "0.3.0"
	Commit  = "none"
	Date    = "unknown"
)

func FullVersion() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, Date)
}
