package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/jira-changelog/internal/config"
	"github.com/danielolaszy/jira-changelog/internal/github"
	"github.com/danielolaszy/jira-changelog/internal/jira"
	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/internal/updater"
)

// updateCmd regenerates the changelog section of a pull request description.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate the changelog section of a pull request",
	Long: `Regenerate the changelog section of a pull request description.

The commits of the pull request are grouped into three sections:
- Issues: commits whose message contains a JIRA key (e.g. 'PROJ-123'), one line per
  key, linked to JIRA and titled with the issue summary
- Other changes: commits without a key
- Merges: commits without a key that mention "merge"

If an issue summary cannot be fetched, the line falls back to the commit messages
that mention the key. The section lives between these markers and is replaced on
every run:

  <!-- generated changes start -->
  <!-- generated changes end -->

Example:
  jira-changelog update -r owner/repo -p 42
  jira-changelog update --dev --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.ValidateJiraConfig(cfg); err != nil {
			return err
		}

		ref, err := targetPullRequest(cmd, cfg)
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		githubClient, err := github.NewClient(ctx, cfg.GitHub)
		if err != nil {
			return fmt.Errorf("failed to initialize github client: %w", err)
		}

		jiraClient, err := jira.NewClient(cfg.Jira)
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %w", err)
		}

		u := &updater.Updater{
			PullRequests: githubClient,
			Issues:       jiraClient,
			JiraHost:     cfg.Jira.Host,
			DryRun:       dryRun,
		}

		result, err := u.Run(ctx, ref)
		if err != nil {
			return err
		}

		if dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), result.Description)
		}

		logging.Debug("update finished",
			"pull_request", ref.String(),
			"changed", result.Changed,
			"written", result.Written)

		return nil
	},
}

func init() {
	updateCmd.Flags().Bool("dry-run", false, "Print the new description instead of updating the pull request")
}
