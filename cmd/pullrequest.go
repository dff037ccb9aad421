package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielolaszy/jira-changelog/internal/config"
	"github.com/danielolaszy/jira-changelog/internal/github"
	"github.com/danielolaszy/jira-changelog/internal/logging"
	"github.com/danielolaszy/jira-changelog/pkg/models"
)

// loadConfig builds the configuration for a command from its persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}
	dev, err := cmd.Flags().GetBool("dev")
	if err != nil {
		return nil, err
	}
	devConfig, err := cmd.Flags().GetString("dev-config")
	if err != nil {
		return nil, err
	}

	opts := config.Options{EnvFile: envFile}
	if dev {
		opts.DevConfig = devConfig
	}

	return config.LoadConfig(opts)
}

// targetPullRequest determines the pull request to work on. Flags win over
// configuration, and the Actions event payload fills whatever is still missing.
func targetPullRequest(cmd *cobra.Command, cfg *config.Config) (models.PullRequestRef, error) {
	repository, err := cmd.Flags().GetString("repository")
	if err != nil {
		return models.PullRequestRef{}, err
	}
	number, err := cmd.Flags().GetInt("pull")
	if err != nil {
		return models.PullRequestRef{}, err
	}

	return resolvePullRequest(repository, number, cfg)
}

func resolvePullRequest(repository string, number int, cfg *config.Config) (models.PullRequestRef, error) {
	if repository == "" {
		repository = cfg.GitHub.Repository
	}
	if number == 0 {
		number = cfg.GitHub.PullNumber
	}

	if (repository == "" || number == 0) && cfg.GitHub.EventPath != "" {
		event, err := github.ReadPullRequestEvent(cfg.GitHub.EventPath)
		if err != nil {
			return models.PullRequestRef{}, fmt.Errorf("failed to read pull request from event payload: %w", err)
		}
		logging.Debug("pull request taken from event payload",
			"path", cfg.GitHub.EventPath,
			"pull_request", event.String())
		if repository == "" {
			repository = event.Repository()
		}
		if number == 0 {
			number = event.Number
		}
	}

	if repository == "" {
		return models.PullRequestRef{}, fmt.Errorf("repository flag is required outside GitHub Actions")
	}
	if number == 0 {
		return models.PullRequestRef{}, fmt.Errorf("pull flag is required outside a pull_request workflow")
	}

	return models.ParsePullRequestRef(repository, number)
}
