package version

import "fmt"

// Set at link time: -ldflags "-X github.com/desilang/scopec/compiler/internal/version.Version=..."
var (
	Version = "0.1.0-dev"
	Commit  = ""
)

func String() string {
	if Commit == "" {
		return fmt.Sprintf("scopec %s", Version)
	}
	return fmt.Sprintf("scopec %s (%s)", Version, Commit)
}
