// Package updater runs one changelog update for a pull request: it fetches
// the commits and current description, builds the changelog section and
// writes the merged description back.
package updater

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/danielolaszy/jira-changelog/internal/changelog"
	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// PullRequests is the subset of the GitHub client the updater needs.
type PullRequests interface {
	ListPullCommits(ctx context.Context, ref models.PullRequestRef) ([]models.CommitRecord, error)
	GetPullDescription(ctx context.Context, ref models.PullRequestRef) (string, error)
	UpdatePullDescription(ctx context.Context, ref models.PullRequestRef, body string) error
}

// Updater regenerates the changelog section of pull request descriptions.
type Updater struct {
	PullRequests PullRequests
	Issues       changelog.IssueLookup

	// JiraHost is used for issue links in the changelog
	JiraHost string

	// DryRun computes the new description without writing it
	DryRun bool
}

// Result describes the outcome of one update.
type Result struct {
	Classified  changelog.ClassifiedCommits
	Block       string
	Description string

	// Replaced is true when the description already held a changelog section
	Replaced bool

	// Changed is false when the merged description equals the current one
	Changed bool

	// Written is true when the description was sent to GitHub
	Written bool
}

// Fetch lists the commits and reads the description of a pull request
// concurrently. Either failure cancels the other request.
func (u *Updater) Fetch(ctx context.Context, ref models.PullRequestRef) ([]models.CommitRecord, string, error) {
	var (
		commits     []models.CommitRecord
		description string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		commits, err = u.PullRequests.ListPullCommits(gctx, ref)
		return err
	})
	g.Go(func() error {
		var err error
		description, err = u.PullRequests.GetPullDescription(gctx, ref)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	return commits, description, nil
}

// Build produces the changelog block for a set of commits.
func (u *Updater) Build(ctx context.Context, commits []models.CommitRecord) (changelog.ClassifiedCommits, string) {
	classified := changelog.Classify(commits)

	resolver := &changelog.Resolver{
		Lookup:   u.Issues,
		Host:     u.JiraHost,
		Fallback: classified.FallbackText,
	}
	summaries := resolver.Resolve(ctx, classified.IssueKeys)

	return classified, changelog.Render(summaries, classified.MergeMessages, classified.OtherMessages)
}

// Run performs a full update of one pull request. Nothing is written when
// fetching fails, when the description would not change, or in dry-run mode.
func (u *Updater) Run(ctx context.Context, ref models.PullRequestRef) (*Result, error) {
	logging.Info("updating pull request changelog", "pull_request", ref.String(), "dry_run", u.DryRun)

	commits, current, err := u.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pull request %s: %w", ref, err)
	}

	classified, block := u.Build(ctx, commits)
	description := changelog.Merge(current, block)

	result := &Result{
		Classified:  classified,
		Block:       block,
		Description: description,
		Replaced:    changelog.HasGeneratedRegion(current),
		Changed:     description != current,
	}

	if !result.Changed {
		logging.Info("changelog is up to date", "pull_request", ref.String())
		return result, nil
	}
	if u.DryRun {
		logging.Info("dry run, description not written", "pull_request", ref.String())
		return result, nil
	}

	if err := u.PullRequests.UpdatePullDescription(ctx, ref, description); err != nil {
		return nil, err
	}
	result.Written = true

	logging.Info("pull request changelog updated",
		"pull_request", ref.String(),
		"replaced", result.Replaced,
		"issue_keys", len(classified.IssueKeys),
		"other_messages", len(classified.OtherMessages),
		"merge_messages", len(classified.MergeMessages))

	return result, nil
}
