package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jira-changelog",
	Short: "Keep a JIRA-linked changelog in GitHub pull request descriptions",
	Long: `jira-changelog maintains a generated changelog section inside a GitHub pull
request description. Commits are grouped by the JIRA issue key in their message,
issue summaries are fetched from JIRA, and the section between the generated
changes markers is rewritten on every run. Text outside the markers is never touched.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// ctx is handed to every network call made by the commands.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Add persistent flags that will be available to all commands
	rootCmd.PersistentFlags().StringP("repository", "r", "", "GitHub repository name (e.g., 'owner/repo'); defaults to GITHUB_REPOSITORY")
	rootCmd.PersistentFlags().IntP("pull", "p", 0, "Pull request number; defaults to the one in the GitHub Actions event payload")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from a dotenv file")
	rootCmd.PersistentFlags().Bool("dev", false, "Read inputs and the event payload from the dev config file")
	rootCmd.PersistentFlags().String("dev-config", "devConfig.json", "Dev config file used with --dev")

	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(commitsCmd)
}
