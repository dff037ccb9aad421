// Package models defines data structures shared across the application.
package models

import (
	"fmt"
	"strings"
)

// CommitRecord represents a single commit of a pull request, in history order.
type CommitRecord struct {
	// SHA is the commit hash; informational only
	SHA string

	// Message is the full commit message, including any body
	Message string
}

// PullRequestRef identifies a pull request on GitHub.
type PullRequestRef struct {
	// Owner is the repository owner (user or organization)
	Owner string

	// Repo is the repository name
	Repo string

	// Number is the pull request number (e.g., 42)
	Number int
}

// ParsePullRequestRef builds a PullRequestRef from a repository in the
// format "owner/repo" and a pull request number.
func ParsePullRequestRef(repository string, number int) (PullRequestRef, error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return PullRequestRef{}, fmt.Errorf("invalid repository format: %s, expected format: owner/repo", repository)
	}
	if number <= 0 {
		return PullRequestRef{}, fmt.Errorf("invalid pull request number: %d", number)
	}
	return PullRequestRef{Owner: parts[0], Repo: parts[1], Number: number}, nil
}

// Repository returns the "owner/repo" form of the reference.
func (r PullRequestRef) Repository() string {
	return r.Owner + "/" + r.Repo
}

// String implements fmt.Stringer, e.g. "owner/repo#42".
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s#%d", r.Repository(), r.Number)
}

// JiraIssue represents the subset of a JIRA issue used for changelog lines.
type JiraIssue struct {
	// Key is the full JIRA ticket identifier (e.g., "ABC-123")
	Key string

	// Summary is the ticket's summary field
	Summary string
}
