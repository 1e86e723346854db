package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/havrydotdev/myclass/internal/buildinfo.Version=...".
var (
	Version = "0.0.1"
	Commit  = "none"
)

func String() string {
	return fmt.Sprintf("myclass %s (commit=%s)", Version, Commit)
}
