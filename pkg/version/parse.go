package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version represents a semantic version with major, minor, patch components.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String returns the version as a string.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Short returns the major.minor form, e.g. "3.11".
func (v Version) Short() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// versionRegex matches version tokens like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?\d+(?:\.\d+)?(?:\.\d+)?`)

// Parse parses a version string such as "3.11" or "v1.2.3" into a Version.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}
	if versionRegex.FindString(s) != s {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	return fromToken(s)
}

// Extract finds and parses the first version number in a string,
// e.g. "Python 3.11.4" or "go1.22.5".
func Extract(s string) (Version, error) {
	token := versionRegex.FindString(s)
	if token == "" {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	return fromToken(token)
}

func fromToken(token string) (Version, error) {
	sv, err := semver.NewVersion(token)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", token, err)
	}
	return Version{
		Major: int(sv.Major()), //nolint:gosec // version components fit in int
		Minor: int(sv.Minor()), //nolint:gosec // version components fit in int
		Patch: int(sv.Patch()), //nolint:gosec // version components fit in int
	}, nil
}
