package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
)

type GitHubClient struct {
	client *github.Client
	ctx    context.Context
}

func NewGitHubClient(client *github.Client) *GitHubClient {
	return &GitHubClient{
		client: client,
		ctx:    context.Background(),
	}
}

func (g *GitHubClient) ListTags(owner, repo string) ([]Tag, error) {
	var allTags []Tag
	opts := &github.ListOptions{PerPage: 100}

	for {
		tags, resp, err := g.client.Repositories.ListTags(g.ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("list tags for %s/%s: %w", owner, repo, err)
		}
		for _, t := range tags {
			allTags = append(allTags, Tag{
				Name:   t.GetName(),
				Commit: t.GetCommit().GetSHA(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return allTags, nil
}

func (g *GitHubClient) ResolveCommit(owner, repo, ref string) (string, error) {
	commit, _, err := g.client.Repositories.GetCommit(g.ctx, owner, repo, ref, nil)
	if err != nil {
		return "", fmt.Errorf("resolve %q in %s/%s: %w", ref, owner, repo, err)
	}
	return commit.GetSHA(), nil
}

// CreateTag publishes the computed tag: an annotated tag object for the
// commit, then a refs/tags/ ref pointing at the tag object.
func (g *GitHubClient) CreateTag(owner, repo, tag, message, sha string) error {
	objType := "commit"
	created, _, err := g.client.Git.CreateTag(g.ctx, owner, repo, &github.Tag{
		Tag:     &tag,
		Message: &message,
		Object:  &github.GitObject{SHA: &sha, Type: &objType},
	})
	if err != nil {
		return fmt.Errorf("create tag %s in %s/%s: %w", tag, owner, repo, err)
	}

	ref := "refs/tags/" + tag
	_, _, err = g.client.Git.CreateRef(g.ctx, owner, repo, &github.Reference{
		Ref:    &ref,
		Object: &github.GitObject{SHA: created.SHA},
	})
	if err != nil {
		return fmt.Errorf("create ref %s in %s/%s: %w", ref, owner, repo, err)
	}
	return nil
}

// ParseRepo extracts owner and repository name from "owner/repo" or a
// GitHub URL.
func ParseRepo(repoURL string) (owner, repo string, err error) {
	repoURL = strings.TrimPrefix(repoURL, "https://")
	repoURL = strings.TrimPrefix(repoURL, "http://")
	repoURL = strings.TrimPrefix(repoURL, "github.com/")
	repoURL = strings.TrimSuffix(repoURL, ".git")
	repoURL = strings.TrimSuffix(repoURL, "/")

	parts := strings.SplitN(repoURL, "/", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot parse GitHub repo from %q", repoURL)
	}
	return parts[0], parts[1], nil
}
