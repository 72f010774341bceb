package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tag pairs a repository tag name with its parsed semantic version.
type Tag struct {
	Name    string
	Version *semver.Version
}

// Prerelease is the decomposed prerelease field of a version: a release
// channel label plus an incrementing ordinal, e.g. "beta" and 3 for
// "1.2.0-beta.3".
type Prerelease struct {
	Label   string
	Ordinal uint64
}

// ParseTag parses a tag name such as "v1.2.3-rc.1" into a semantic
// version. A leading "v" is optional. Names that are not complete
// semantic versions (e.g. "v0.9" or "latest") are rejected with ok=false;
// rejection is never an error, callers simply skip the tag.
func ParseTag(name string) (*semver.Version, bool) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(name, "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// SplitPrerelease decomposes a version's prerelease field into its
// channel label and numeric ordinal. It returns ok=false for stable
// versions and for prerelease fields that do not follow the "label.N"
// form; such versions do not participate in channel matching.
func SplitPrerelease(v *semver.Version) (Prerelease, bool) {
	label, rest, found := strings.Cut(v.Prerelease(), ".")
	if !found {
		return Prerelease{}, false
	}
	ord, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return Prerelease{}, false
	}
	return Prerelease{Label: label, Ordinal: ord}, true
}
