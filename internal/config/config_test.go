package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"GITHUB_TOKEN", "INPUT_GITHUBTOKEN", "GITHUB_DOMAIN", "GITHUB_REPOSITORY", "GITHUB_EVENT_PATH",
	"JIRA_HOST", "INPUT_JIRAHOST", "JIRA_EMAIL", "INPUT_JIRAEMAIL", "JIRA_TOKEN", "INPUT_JIRATOKEN",
}

// clearEnv unsets every variable the config reads and restores them when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGitHubConfig(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		token   string
		wantErr bool
	}{
		{
			name:   "Explicit github.com",
			domain: "github.com",
			token:  "test-token",
		},
		{
			name:   "Custom GitHub domain",
			domain: "github.example.com",
			token:  "test-token",
		},
		{
			name:   "Empty domain should default to github.com",
			domain: "",
			token:  "test-token",
		},
		{
			name:    "Missing token",
			domain:  "github.com",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GITHUB_DOMAIN", tt.domain)
			t.Setenv("GITHUB_TOKEN", tt.token)

			config, err := LoadConfig(Options{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			if tt.domain == "" {
				assert.Equal(t, "github.com", config.GitHub.Domain)
			} else {
				assert.Equal(t, tt.domain, config.GitHub.Domain)
			}
			assert.Equal(t, tt.token, config.GitHub.Token)
			assert.False(t, config.DevMode)
		})
	}
}

func TestLoadConfigActionInputs(t *testing.T) {
	clearEnv(t)
	t.Setenv("INPUT_GITHUBTOKEN", "input-token")
	t.Setenv("INPUT_JIRAHOST", "acme.atlassian.net")
	t.Setenv("INPUT_JIRAEMAIL", "bot@acme.com")
	t.Setenv("INPUT_JIRATOKEN", "jira-token")
	t.Setenv("JIRA_HOST", "plain.atlassian.net")
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("GITHUB_EVENT_PATH", "/github/workflow/event.json")

	config, err := LoadConfig(Options{})
	require.NoError(t, err)

	assert.Equal(t, "input-token", config.GitHub.Token)
	assert.Equal(t, "acme/widgets", config.GitHub.Repository)
	assert.Equal(t, "/github/workflow/event.json", config.GitHub.EventPath)
	// The plain name is bound first and wins over the action input.
	assert.Equal(t, "plain.atlassian.net", config.Jira.Host)
	assert.Equal(t, "bot@acme.com", config.Jira.Email)
	assert.Equal(t, "jira-token", config.Jira.Token)
	assert.NoError(t, ValidateJiraConfig(config))
}

func TestLoadConfigEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("JIRA_EMAIL", "from-environment@acme.com")
	path := writeFile(t, ".env", "GITHUB_TOKEN=file-token\nJIRA_HOST=file.atlassian.net\nJIRA_EMAIL=from-file@acme.com\n")

	config, err := LoadConfig(Options{EnvFile: path})
	require.NoError(t, err)

	assert.Equal(t, "file-token", config.GitHub.Token)
	assert.Equal(t, "file.atlassian.net", config.Jira.Host)
	assert.Equal(t, "from-environment@acme.com", config.Jira.Email)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "test-token")

	_, err := LoadConfig(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestLoadConfigDevMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("JIRA_HOST", "env.atlassian.net")
	t.Setenv("GITHUB_REPOSITORY", "someone/else")

	path := writeFile(t, "devConfig.json", `{
  "inputs": {
    "jiraHost": "dev.atlassian.net",
    "jiraEmail": "dev@acme.com",
    "jiraToken": "dev-jira-token"
  },
  "overrides": {
    "github": {
      "context": {
        "payload": {
          "pull_request": {
            "number": 17,
            "base": {"repo": {"name": "widgets", "owner": {"login": "acme"}}}
          }
        }
      }
    }
  }
}`)

	config, err := LoadConfig(Options{DevConfig: path})
	require.NoError(t, err)

	assert.True(t, config.DevMode)
	assert.Equal(t, "env-token", config.GitHub.Token)
	assert.Equal(t, "dev.atlassian.net", config.Jira.Host)
	assert.Equal(t, "dev@acme.com", config.Jira.Email)
	assert.Equal(t, "dev-jira-token", config.Jira.Token)
	assert.Equal(t, "acme/widgets", config.GitHub.Repository)
	assert.Equal(t, 17, config.GitHub.PullNumber)
}

func TestLoadConfigBadDevConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "env-token")
	path := writeFile(t, "devConfig.json", `{not json`)

	_, err := LoadConfig(Options{DevConfig: path})
	assert.ErrorContains(t, err, "failed to read dev config")
}

func TestValidateJiraConfig(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		email   string
		token   string
		wantErr string
	}{
		{
			name:  "All fields present",
			host:  "acme.atlassian.net",
			email: "bot@acme.com",
			token: "test-token",
		},
		{
			name:    "Missing host",
			email:   "bot@acme.com",
			token:   "test-token",
			wantErr: "JIRA_HOST",
		},
		{
			name:    "Missing email",
			host:    "acme.atlassian.net",
			token:   "test-token",
			wantErr: "JIRA_EMAIL",
		},
		{
			name:    "Missing token",
			host:    "acme.atlassian.net",
			email:   "bot@acme.com",
			wantErr: "JIRA_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Jira: JiraConfig{
					Host:  tt.host,
					Email: tt.email,
					Token: tt.token,
				},
			}

			err := ValidateJiraConfig(config)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
