package version // import "github.com/bookmate-app/bookmate/version"

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the semver of the current build.
var Version = "0.1.0"

func GetCurrentVersion() string {
	return Version
}

// GetMinorVersion returns the minor version, e.g. "0.1" for "0.1.2".
func GetMinorVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

func IsVersionGreaterThan(version, target string) bool {
	return semver.Compare("v"+version, "v"+target) > 0
}

func IsVersionGreaterOrEqualThan(version, target string) bool {
	return semver.Compare("v"+version, "v"+target) >= 0
}
