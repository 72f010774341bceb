package release

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/semver-release-tagger/pkg/version"
)

// initial is the version a repository without release history starts from.
func initial() *semver.Version {
	return semver.New(0, 1, 0, "", "")
}

// Next computes the next version for the requested bump level and channel
// from the repository's tag catalog.
//
// The numeric target is always derived from the latest stable release:
// the requested level bumps it, or the initial 0.1.0 stands in when no
// stable release exists yet. Prerelease channels then attach the next
// unused ordinal for that target, so re-running with the same channel and
// target advances only the ordinal and never re-bumps the numeric core.
// Anchoring follows the promotion chain beta → rc → release: each channel
// anchors on the latest tag of the preceding stage for the same target
// version, falling back to the latest stable release.
//
// The returned version sorts strictly after every cataloged version on
// the same release line. Next performs no I/O and is deterministic for a
// fixed catalog and request.
func Next(cat *version.Catalog, req Request) (Result, error) {
	switch req.Channel {
	case ChannelBeta, ChannelRC, ChannelRelease:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedChannel, req.Channel)
	}
	switch req.Level {
	case LevelMajor, LevelMinor, LevelPatch:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedLevel, req.Level)
	}

	target := nextTarget(cat, req.Level)
	base := resolveBase(cat, req.Channel, target)

	next := target
	if label := req.Channel.Label(); label != "" {
		ordinal := cat.MaxOrdinal(target, label) + 1
		v, err := target.SetPrerelease(fmt.Sprintf("%s.%d", label, ordinal))
		if err != nil {
			return Result{}, fmt.Errorf("attach prerelease to %s: %w", target, err)
		}
		next = &v
	}

	return Result{
		Version: next,
		Base:    base,
		TagName: "v" + next.String(),
	}, nil
}

// nextTarget computes the stable major.minor.patch triple the request is
// moving toward: the latest stable release bumped per the level, or the
// initial version itself (no bump applied) when nothing stable has
// shipped yet.
func nextTarget(cat *version.Catalog, level Level) *semver.Version {
	stable, ok := cat.LatestStable()
	if !ok {
		return initial()
	}
	var next semver.Version
	switch level {
	case LevelMajor:
		next = stable.IncMajor()
	case LevelMinor:
		next = stable.IncMinor()
	default:
		next = stable.IncPatch()
	}
	return &next
}

// resolveBase selects the version the computation anchors on. rc anchors
// on the latest beta for the target version and release on the latest rc;
// both fall back to the latest stable release when the preceding stage
// has no tag for the target. beta always anchors on the latest stable.
func resolveBase(cat *version.Catalog, ch Channel, target *semver.Version) *semver.Version {
	switch ch {
	case ChannelRC:
		if t, ok := cat.LatestPrerelease(ChannelBeta.Label(), target); ok {
			return t.Version
		}
	case ChannelRelease:
		if t, ok := cat.LatestPrerelease(ChannelRC.Label(), target); ok {
			return t.Version
		}
	}
	if stable, ok := cat.LatestStable(); ok {
		return stable
	}
	return initial()
}
