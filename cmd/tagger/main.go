package main

import (
	"fmt"
	"os"

	"github.com/google/go-github/v60/github"
	"github.com/spf13/cobra"

	"github.com/semver-release-tagger/pkg/config"
	"github.com/semver-release-tagger/pkg/release"
	"github.com/semver-release-tagger/pkg/reporter"
	"github.com/semver-release-tagger/pkg/vcs"
	"github.com/semver-release-tagger/pkg/version"
)

var (
	buildVersion = "dev"
	commit       = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tagger",
		Short:   "Compute and publish the next semantic-version tag",
		Long:    `Inspects a repository's existing tags, computes the next semantic version for the requested bump level and release channel, and publishes it as a tag.`,
		Version: fmt.Sprintf("%s (%s)", buildVersion, commit),
		RunE:    run,
	}

	rootCmd.Flags().String("repo", os.Getenv("GITHUB_REPOSITORY"), "GitHub repo (owner/repo) to tag")
	rootCmd.Flags().String("level", "", "Bump level: major | minor | patch")
	rootCmd.Flags().String("channel", "", "Release channel: beta | rc | release")
	rootCmd.Flags().String("ref", "", "Commit to tag: SHA, branch, or HEAD")
	rootCmd.Flags().String("github-token", os.Getenv("GITHUB_TOKEN"), "GitHub token for API access")
	rootCmd.Flags().String("output", "", "Output format: text | json | actions")
	rootCmd.Flags().Bool("dry-run", false, "Compute the next version without creating the tag")
	rootCmd.Flags().String("config", ".semver-tagger.yml", "Path to config file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "warning: could not load config file: %v (using defaults)\n", err)
		}
		cfg = config.Default()
	}
	cfg = config.MergeFlags(cfg, cmd.Flags())

	owner, name, err := vcs.ParseRepo(cfg.Repo)
	if err != nil {
		return fmt.Errorf("no repository to tag; specify --repo or set GITHUB_REPOSITORY: %w", err)
	}

	level, err := release.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	channel, err := release.ParseChannel(cfg.Channel)
	if err != nil {
		return err
	}

	client := github.NewClient(nil)
	if cfg.Token != "" {
		client = client.WithAuthToken(cfg.Token)
	}
	gh := vcs.NewGitHubClient(client)

	tags, err := gh.ListTags(owner, name)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	cat := version.NewCatalog(names)

	res, err := release.Next(cat, release.Request{Level: level, Channel: channel})
	if err != nil {
		return err
	}

	summary := reporter.Summary{
		Repo:    owner + "/" + name,
		Base:    res.Base.String(),
		Version: res.Version.String(),
		TagName: res.TagName,
		Channel: string(channel),
		DryRun:  cfg.DryRun,
	}
	if previous, ok := cat.LatestStable(); ok {
		summary.Previous = "v" + previous.String()
	}

	if !cfg.DryRun {
		sha, err := gh.ResolveCommit(owner, name, cfg.Ref)
		if err != nil {
			return err
		}
		message := fmt.Sprintf(cfg.Message, res.TagName)
		if err := gh.CreateTag(owner, name, res.TagName, message, sha); err != nil {
			return err
		}
		summary.Created = true
	}

	return reporter.New(cfg.Output).Report(summary)
}
