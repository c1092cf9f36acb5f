// Package version carries build metadata for the cocoon tools.
package version

import "fmt"

// Set with -ldflags "-X cocoon-morph/internal/version.Version=...".
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("cocoonmeasure %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
