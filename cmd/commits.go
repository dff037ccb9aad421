package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/jira-changelog/internal/changelog"
	"github.com/danielolaszy/jira-changelog/internal/github"
)

// commitsCmd shows how the commits of a pull request are classified.
var commitsCmd = &cobra.Command{
	Use:   "commits",
	Short: "Show how the commits of a pull request are classified",
	Long: `List the JIRA keys, other commits and merge commits found in a pull request,
without contacting JIRA or changing the pull request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ref, err := targetPullRequest(cmd, cfg)
		if err != nil {
			return err
		}

		githubClient, err := github.NewClient(cmd.Context(), cfg.GitHub)
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		commits, err := githubClient.ListPullCommits(cmd.Context(), ref)
		if err != nil {
			return err
		}

		printClassification(cmd.OutOrStdout(), changelog.Classify(commits))
		return nil
	},
}

// printClassification writes each bucket under its own heading, one subject line per entry.
func printClassification(w io.Writer, classified changelog.ClassifiedCommits) {
	fmt.Fprintf(w, "Issue keys (%d):\n", len(classified.IssueKeys))
	for _, key := range classified.IssueKeys {
		fmt.Fprintf(w, "  %s\t%s\n", key, classified.FallbackText(key))
	}

	fmt.Fprintf(w, "Other commits (%d):\n", len(classified.OtherMessages))
	for _, message := range classified.OtherMessages {
		fmt.Fprintf(w, "  %s\n", subject(message))
	}

	fmt.Fprintf(w, "Merge commits (%d):\n", len(classified.MergeMessages))
	for _, message := range classified.MergeMessages {
		fmt.Fprintf(w, "  %s\n", subject(message))
	}
}

func subject(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(line)
}
