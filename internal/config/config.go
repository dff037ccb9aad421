// Package config provides centralized configuration management for the application.
//
// A Config is built once when a command starts and handed to every component
// that needs it; nothing reads configuration from global state afterwards.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/danielolaszy/jira-changelog/internal/logging"
)

// DefaultGitHubDomain is used when GITHUB_DOMAIN is not set.
const DefaultGitHubDomain = "github.com"

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
	Jira   JiraConfig

	// DevMode is set when a dev config file overrode the environment
	DevMode bool
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token  string
	Domain string

	// Repository is "owner/repo", from GITHUB_REPOSITORY or a dev payload
	Repository string

	// PullNumber is only known up front in dev mode; 0 otherwise
	PullNumber int

	// EventPath points at the Actions event payload (GITHUB_EVENT_PATH)
	EventPath string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	Host  string
	Email string
	Token string
}

// Options controls where configuration is read from besides the environment.
type Options struct {
	// EnvFile is a dotenv file loaded before the environment is read.
	// Variables already present in the environment win.
	EnvFile string

	// DevConfig is a JSON file with "inputs" and
	// "overrides.github.context.payload" sections that override the environment.
	DevConfig string
}

// LoadConfig initializes and loads configuration from environment variables,
// applying opts on top.
func LoadConfig(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
		logging.Debug("loaded env file", "path", opts.EnvFile)
	}

	// Initialize Viper for environment variables
	v := viper.New()

	// Plain names first, then the INPUT_* names GitHub Actions uses for step inputs
	_ = v.BindEnv("github.token", "GITHUB_TOKEN", "INPUT_GITHUBTOKEN")
	_ = v.BindEnv("github.domain", "GITHUB_DOMAIN")
	_ = v.BindEnv("github.repository", "GITHUB_REPOSITORY")
	_ = v.BindEnv("github.event_path", "GITHUB_EVENT_PATH")
	_ = v.BindEnv("jira.host", "JIRA_HOST", "INPUT_JIRAHOST")
	_ = v.BindEnv("jira.email", "JIRA_EMAIL", "INPUT_JIRAEMAIL")
	_ = v.BindEnv("jira.token", "JIRA_TOKEN", "INPUT_JIRATOKEN")
	v.SetDefault("github.domain", DefaultGitHubDomain)

	config := &Config{
		GitHub: GitHubConfig{
			Token:      v.GetString("github.token"),
			Domain:     v.GetString("github.domain"),
			Repository: v.GetString("github.repository"),
			EventPath:  v.GetString("github.event_path"),
		},
		Jira: JiraConfig{
			Host:  v.GetString("jira.host"),
			Email: v.GetString("jira.email"),
			Token: v.GetString("jira.token"),
		},
	}

	if opts.DevConfig != "" {
		if err := applyDevConfig(config, opts.DevConfig); err != nil {
			return nil, err
		}
	}

	if config.GitHub.Domain == "" {
		config.GitHub.Domain = DefaultGitHubDomain
	}

	// Validate configuration
	if err := Validate(config); err != nil {
		return nil, err
	}

	logging.Debug("configuration loaded",
		"github_domain", config.GitHub.Domain,
		"github_token", logging.MaskSensitive(config.GitHub.Token),
		"jira_host", config.Jira.Host,
		"jira_token", logging.MaskSensitive(config.Jira.Token),
		"dev_mode", config.DevMode)

	return config, nil
}

// applyDevConfig overlays a dev config file on cfg. Inputs replace the
// matching environment values; the payload supplies the pull request.
func applyDevConfig(cfg *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read dev config %s: %w", path, err)
	}

	// Viper lowercases keys, so camelCase inputs are looked up in lowercase.
	overrideString(&cfg.GitHub.Token, v.GetString("inputs.githubtoken"))
	overrideString(&cfg.GitHub.Domain, v.GetString("inputs.githubdomain"))
	overrideString(&cfg.Jira.Host, v.GetString("inputs.jirahost"))
	overrideString(&cfg.Jira.Email, v.GetString("inputs.jiraemail"))
	overrideString(&cfg.Jira.Token, v.GetString("inputs.jiratoken"))

	const payload = "overrides.github.context.payload.pull_request"
	owner := v.GetString(payload + ".base.repo.owner.login")
	repo := v.GetString(payload + ".base.repo.name")
	if owner != "" && repo != "" {
		cfg.GitHub.Repository = owner + "/" + repo
	}
	if number := v.GetInt(payload + ".number"); number > 0 {
		cfg.GitHub.PullNumber = number
	}

	cfg.DevMode = true
	logging.Info("dev config applied",
		"path", path,
		"repository", cfg.GitHub.Repository,
		"pull_number", cfg.GitHub.PullNumber)

	return nil
}

func overrideString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Validate ensures that all required configuration values are provided.
func Validate(config *Config) error {
	var missingVars []string

	// GitHub validation
	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}

// ValidateJiraConfig validates JIRA-specific configuration.
func ValidateJiraConfig(config *Config) error {
	var missingVars []string

	// JIRA validation
	if config.Jira.Host == "" {
		missingVars = append(missingVars, "JIRA_HOST")
	}
	if config.Jira.Email == "" {
		missingVars = append(missingVars, "JIRA_EMAIL")
	}
	if config.Jira.Token == "" {
		missingVars = append(missingVars, "JIRA_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
