package release

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Level is the numeric component a release bumps.
type Level string

const (
	LevelMajor Level = "major"
	LevelMinor Level = "minor"
	LevelPatch Level = "patch"
)

// Channel is the release track a version is published on, ordered as a
// promotion pipeline: beta → rc → release. beta and rc produce
// prerelease versions; release produces a stable version.
type Channel string

const (
	ChannelBeta    Channel = "beta"
	ChannelRC      Channel = "rc"
	ChannelRelease Channel = "release"
)

var (
	ErrUnsupportedLevel   = errors.New("unsupported bump level")
	ErrUnsupportedChannel = errors.New("unsupported channel")
)

// ParseLevel maps a bump level name to its Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelMajor, LevelMinor, LevelPatch:
		return Level(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLevel, s)
}

// ParseChannel maps a channel name to its Channel. "release-candidate"
// is accepted as an alias for rc. Unknown names are fatal; the engine
// refuses to guess.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "beta":
		return ChannelBeta, nil
	case "rc", "release-candidate":
		return ChannelRC, nil
	case "release":
		return ChannelRelease, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedChannel, s)
}

// Label returns the prerelease label the channel attaches to versions,
// or the empty string for the stable release channel.
func (c Channel) Label() string {
	switch c {
	case ChannelBeta:
		return "beta"
	case ChannelRC:
		return "rc"
	}
	return ""
}

// Request is the caller's intent: which numeric component to bump and on
// which channel to publish.
type Request struct {
	Level   Level
	Channel Channel
}

// Result is the computed next version together with the version it was
// anchored on.
type Result struct {
	// Version is the next version to publish.
	Version *semver.Version

	// Base is the version the computation anchored on per the promotion
	// chain. For a repository without valid version tags this is the
	// initial 0.1.0 sentinel.
	Base *semver.Version

	// TagName is Version rendered as a repository tag name ("v" prefix).
	TagName string
}
