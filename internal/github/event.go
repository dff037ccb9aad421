package github

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/go-github/v41/github"

	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// ParsePullRequestEvent reads a GitHub Actions pull_request event payload and
// returns the pull request it refers to. The base repository is used, so
// pull requests from forks resolve to the repository they target.
func ParsePullRequestEvent(r io.Reader) (models.PullRequestRef, error) {
	var event github.PullRequestEvent
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return models.PullRequestRef{}, fmt.Errorf("failed to decode event payload: %w", err)
	}

	pr := event.GetPullRequest()
	if pr == nil {
		return models.PullRequestRef{}, fmt.Errorf("event payload has no pull_request")
	}

	repo := pr.GetBase().GetRepo()
	ref := models.PullRequestRef{
		Owner:  repo.GetOwner().GetLogin(),
		Repo:   repo.GetName(),
		Number: pr.GetNumber(),
	}
	if ref.Owner == "" || ref.Repo == "" || ref.Number == 0 {
		return models.PullRequestRef{}, fmt.Errorf("event payload is missing the base repository or pull request number")
	}

	return ref, nil
}

// ReadPullRequestEvent parses the event payload stored at path.
func ReadPullRequestEvent(path string) (models.PullRequestRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.PullRequestRef{}, fmt.Errorf("failed to open event payload: %w", err)
	}
	defer f.Close()

	return ParsePullRequestEvent(f)
}
