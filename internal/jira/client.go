package jira

import (
	"context"
	"fmt"

	jira "github.com/andygrunwald/go-jira"

	"github.com/danielolaszy/jira-changelog/internal/changelog"
	"github.com/danielolaszy/jira-changelog/internal/config"
	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// Client handles interactions with the JIRA API
type Client struct {
	client *jira.Client
}

// NewClient creates a new JIRA client authenticated with an email address
// and API token.
func NewClient(cfg config.JiraConfig) (*Client, error) {
	if cfg.Host == "" || cfg.Email == "" || cfg.Token == "" {
		return nil, fmt.Errorf("JIRA_HOST, JIRA_EMAIL and JIRA_TOKEN must all be set")
	}

	// Create JIRA authentication transport
	tp := jira.BasicAuthTransport{
		Username: cfg.Email,
		Password: cfg.Token,
	}

	client, err := jira.NewClient(tp.Client(), changelog.HostURL(cfg.Host)+"/")
	if err != nil {
		return nil, fmt.Errorf("failed to create JIRA client: %w", err)
	}

	logging.Info("jira configuration",
		"host", cfg.Host,
		"email", cfg.Email,
		"token", logging.MaskSensitive(cfg.Token))

	return &Client{client: client}, nil
}

// GetIssue fetches the key and summary of a JIRA issue. Every failure is
// returned as a *changelog.LookupError.
func (c *Client) GetIssue(ctx context.Context, key string) (models.JiraIssue, error) {
	if c.client == nil {
		return models.JiraIssue{}, &changelog.LookupError{
			Key: changelog.IssueKey(key),
			Err: fmt.Errorf("JIRA client not initialized"),
		}
	}

	issue, resp, err := c.client.Issue.GetWithContext(ctx, key, &jira.GetQueryOptions{Fields: "summary"})
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logging.Debug("jira issue lookup failed",
			"issue_key", key,
			"status_code", status,
			"error", err)
		return models.JiraIssue{}, &changelog.LookupError{Key: changelog.IssueKey(key), Err: err}
	}

	if issue == nil || issue.Fields == nil {
		return models.JiraIssue{}, &changelog.LookupError{
			Key: changelog.IssueKey(key),
			Err: fmt.Errorf("response has no issue fields"),
		}
	}

	return models.JiraIssue{Key: issue.Key, Summary: issue.Fields.Summary}, nil
}

// GetIssueSummary returns the summary of a JIRA issue.
func (c *Client) GetIssueSummary(ctx context.Context, key string) (string, error) {
	issue, err := c.GetIssue(ctx, key)
	if err != nil {
		return "", err
	}
	return issue.Summary, nil
}
