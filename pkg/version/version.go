// Package version exposes build information for the userdir binary.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	goversion "github.com/caarlos0/go-version"
)

// Application metadata shown by `userdir version`.
const (
	Application = "userdir"
	Description = "Browse, search and page through a remote user directory"
	WebSite     = "https://github.com/rshade/userdir"
)

// Build-time values, set with -ldflags "-X github.com/rshade/userdir/pkg/version.version=...".
//
//nolint:gochecknoglobals // Populated by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// Info returns the full build information.
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, WebSite),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if gitCommit != "" {
				i.GitCommit = gitCommit
			}
			if buildDate != "" {
				i.BuildDate = buildDate
			}
		},
	)
}

// IsRelease reports whether v is a valid semantic version without a
// pre-release suffix. Development builds report false.
func IsRelease(v string) bool {
	parsed, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return false
	}
	return parsed.Prerelease() == ""
}
