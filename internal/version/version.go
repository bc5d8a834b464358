package version

import (
	"fmt"
	"strings"
)

// Set at build time via -ldflags "-X github.com/faizmokh/productify/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the --version string. Commit and date are appended only when the
// build stamped them.
func Info() string {
	var meta []string
	if Commit != "" && Commit != "none" {
		meta = append(meta, "commit "+Commit)
	}
	if Date != "" && Date != "unknown" {
		meta = append(meta, "built "+Date)
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, strings.Join(meta, ", "))
}
