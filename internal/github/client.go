// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"

	"github.com/danielolaszy/jira-changelog/internal/config"
	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// commitsPerPage is the largest page GitHub serves. Only the first page of a
// pull request's commits is read.
const commitsPerPage = 100

// Client encapsulates the GitHub API client.
type Client struct {
	client *github.Client
}

// NewClient creates a new GitHub API client from cfg. It authenticates with
// the configured token and points the client at the GitHub Enterprise API
// when a custom domain is configured.
func NewClient(ctx context.Context, cfg config.GitHubConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token not found in configuration")
	}

	domain := cfg.Domain
	if domain == "" {
		domain = config.DefaultGitHubDomain
	}
	apiURL := APIURL(domain)

	logging.Info("github configuration",
		"domain", domain,
		"api_url", apiURL,
		"token", logging.MaskSensitive(cfg.Token))

	// Create the oauth2 client
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	)
	tc := oauth2.NewClient(ctx, ts)

	client := github.NewClient(tc)

	// If not using default GitHub.com, set custom API endpoint
	if domain != config.DefaultGitHubDomain {
		parsedURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url: %w", err)
		}

		client.BaseURL = parsedURL
		client.UploadURL = parsedURL
	}

	return &Client{client: client}, nil
}

// APIURL returns the REST API root for a GitHub domain.
func APIURL(domain string) string {
	if domain == "" || domain == config.DefaultGitHubDomain {
		return "https://api.github.com/"
	}
	return fmt.Sprintf("https://%s/api/v3/", domain)
}

// ListPullCommits returns the commits of a pull request in history order.
func (c *Client) ListPullCommits(ctx context.Context, ref models.PullRequestRef) ([]models.CommitRecord, error) {
	logging.Debug("listing pull request commits", "pull_request", ref.String())

	commits, resp, err := c.client.PullRequests.ListCommits(ctx, ref.Owner, ref.Repo, ref.Number,
		&github.ListOptions{PerPage: commitsPerPage})
	if err != nil {
		logging.Error("failed to list pull request commits",
			"pull_request", ref.String(),
			"error", err)
		return nil, fmt.Errorf("failed to list commits of %s: %w", ref, err)
	}

	if resp != nil && resp.NextPage != 0 {
		logging.Warn("pull request has more commits than one page, the rest are ignored",
			"pull_request", ref.String(),
			"per_page", commitsPerPage)
	}

	records := make([]models.CommitRecord, 0, len(commits))
	for _, commit := range commits {
		records = append(records, models.CommitRecord{
			SHA:     commit.GetSHA(),
			Message: commit.GetCommit().GetMessage(),
		})
	}

	logging.Debug("listed pull request commits",
		"pull_request", ref.String(),
		"commit_count", len(records))

	return records, nil
}

// GetPullDescription returns the body of a pull request. A pull request
// without a body yields an empty string.
func (c *Client) GetPullDescription(ctx context.Context, ref models.PullRequestRef) (string, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		logging.Error("failed to get pull request",
			"pull_request", ref.String(),
			"error", err)
		return "", fmt.Errorf("failed to get pull request %s: %w", ref, err)
	}

	return pr.GetBody(), nil
}

// UpdatePullDescription replaces the body of a pull request.
func (c *Client) UpdatePullDescription(ctx context.Context, ref models.PullRequestRef, body string) error {
	_, _, err := c.client.PullRequests.Edit(ctx, ref.Owner, ref.Repo, ref.Number, &github.PullRequest{
		Body: github.String(body),
	})
	if err != nil {
		logging.Error("failed to update pull request description",
			"pull_request", ref.String(),
			"error", err)
		return fmt.Errorf("failed to update pull request %s: %w", ref, err)
	}

	logging.Info("updated pull request description", "pull_request", ref.String())
	return nil
}
