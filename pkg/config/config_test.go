package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tagger", pflag.ContinueOnError)
	flags.String("repo", "", "")
	flags.String("level", "", "")
	flags.String("channel", "", "")
	flags.String("ref", "", "")
	flags.String("github-token", "", "")
	flags.String("output", "", "")
	flags.Bool("dry-run", false, "")
	return flags
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "patch", cfg.Level)
	assert.Equal(t, "release", cfg.Channel)
	assert.Equal(t, "HEAD", cfg.Ref)
	assert.Equal(t, "text", cfg.Output)
	assert.False(t, cfg.DryRun)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tagger.yml")
	data := []byte("repo: acme/widgets\nlevel: minor\nchannel: beta\nmessage: \"Build %s\"\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, "minor", cfg.Level)
	assert.Equal(t, "beta", cfg.Channel)
	assert.Equal(t, "Build %s", cfg.Message)
	// Unset keys keep their defaults.
	assert.Equal(t, "HEAD", cfg.Ref)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.True(t, os.IsNotExist(err))
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{
		"--repo", "acme/widgets",
		"--level", "major",
		"--channel", "rc",
		"--ref", "deadbeef",
		"--github-token", "tok",
		"--output", "json",
		"--dry-run",
	}))

	cfg := MergeFlags(Default(), flags)
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, "major", cfg.Level)
	assert.Equal(t, "rc", cfg.Channel)
	assert.Equal(t, "deadbeef", cfg.Ref)
	assert.Equal(t, "tok", cfg.Token)
	assert.Equal(t, "json", cfg.Output)
	assert.True(t, cfg.DryRun)
}

func TestMergeFlags_EmptyFlagsKeepConfig(t *testing.T) {
	t.Parallel()

	base := Default()
	base.Repo = "acme/widgets"
	base.Channel = "beta"

	cfg := MergeFlags(base, newFlags())
	assert.Equal(t, "acme/widgets", cfg.Repo)
	assert.Equal(t, "beta", cfg.Channel)
	assert.Equal(t, "patch", cfg.Level)
}
