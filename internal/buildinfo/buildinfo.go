package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/scwatts/ecocyc-pathways/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("ecocyc %s (commit=%s, date=%s)", Version, Commit, Date)
}
