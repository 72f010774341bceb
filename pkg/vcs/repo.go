package vcs

// Tag pairs a repository tag name with the commit it points at.
type Tag struct {
	Name   string
	Commit string
}

// RepoClient is the boundary to the repository host: it supplies the
// current tag list and publishes the computed tag. The version engine
// itself never touches it; orchestration wires the two together.
type RepoClient interface {
	// ListTags returns all tags for the given repository.
	ListTags(owner, repo string) ([]Tag, error)

	// ResolveCommit resolves a ref (SHA, branch, tag, or "HEAD") to a
	// commit SHA.
	ResolveCommit(owner, repo, ref string) (string, error)

	// CreateTag creates an annotated tag object for the given commit
	// plus a ref pointing at it.
	CreateTag(owner, repo, tag, message, sha string) error
}
