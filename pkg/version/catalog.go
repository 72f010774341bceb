package version

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Catalog holds the parseable version tags of a repository, sorted by
// semantic version precedence, highest first. Tag names that are not
// valid semantic versions are dropped at construction time and never
// reported. A catalog is built fresh per run and is read-only afterwards.
type Catalog struct {
	tags []Tag
}

// NewCatalog builds a catalog from raw tag names.
func NewCatalog(names []string) *Catalog {
	tags := make([]Tag, 0, len(names))
	for _, name := range names {
		v, ok := ParseTag(name)
		if !ok {
			continue
		}
		tags = append(tags, Tag{Name: name, Version: v})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Version.GreaterThan(tags[j].Version)
	})
	return &Catalog{tags: tags}
}

// Tags returns the catalog's tags, highest version first.
func (c *Catalog) Tags() []Tag {
	return c.tags
}

// Empty reports whether the catalog holds no valid version tags.
func (c *Catalog) Empty() bool {
	return len(c.tags) == 0
}

// LatestStable returns the highest version that carries no prerelease
// field, or ok=false when the repository has never shipped a stable
// release.
func (c *Catalog) LatestStable() (*semver.Version, bool) {
	for _, t := range c.tags {
		if t.Version.Prerelease() == "" {
			return t.Version, true
		}
	}
	return nil, false
}

// LatestPrerelease returns the highest tag whose major.minor.patch triple
// equals core and whose prerelease label equals label. Prerelease fields
// without a parseable ordinal are skipped.
func (c *Catalog) LatestPrerelease(label string, core *semver.Version) (Tag, bool) {
	for _, t := range c.tags {
		pre, ok := SplitPrerelease(t.Version)
		if !ok || pre.Label != label || !sameCore(t.Version, core) {
			continue
		}
		return t, true
	}
	return Tag{}, false
}

// MaxOrdinal returns the highest prerelease ordinal among tags matching
// the given core version and channel label, or 0 when none match.
func (c *Catalog) MaxOrdinal(core *semver.Version, label string) uint64 {
	var max uint64
	for _, t := range c.tags {
		pre, ok := SplitPrerelease(t.Version)
		if !ok || pre.Label != label || !sameCore(t.Version, core) {
			continue
		}
		if pre.Ordinal > max {
			max = pre.Ordinal
		}
	}
	return max
}

func sameCore(a, b *semver.Version) bool {
	return a.Major() == b.Major() && a.Minor() == b.Minor() && a.Patch() == b.Patch()
}
