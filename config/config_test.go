package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHub.URL)
	assert.Empty(t, cfg.GitHub.Token)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
	assert.True(t, cfg.Output.ShowDetails)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
github:
  url: https://github.example.com/api/v3
  token: ghp_testtoken
logging:
  level: debug
  format: json
  color: false
output:
  show_details: false
filter:
  default_expression: 'Comments > 0'
  presets:
    stale: 'daysSince(UpdatedAt) > 90'
    triage: 'len(Labels) == 0'
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://github.example.com/api/v3", cfg.GitHub.URL)
	assert.Equal(t, "ghp_testtoken", cfg.GitHub.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
	assert.False(t, cfg.Output.ShowDetails)
	assert.Equal(t, "Comments > 0", cfg.Filter.DefaultExpression)
	assert.Equal(t, "daysSince(UpdatedAt) > 90", cfg.Filter.Presets["stale"])
	assert.Len(t, cfg.Filter.Presets, 2)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HUBGRAB_GITHUB_TOKEN", "env-token")
	t.Setenv("HUBGRAB_LOGGING_LEVEL", "debug")

	path := writeConfig(t, `
github:
  url: https://github.example.com/api/v3
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Token has no default and no file value; the env still applies.
	assert.Equal(t, "env-token", cfg.GitHub.Token)
	// Env beats the file value.
	assert.Equal(t, "debug", cfg.Logging.Level)
	// File values without an env counterpart are untouched.
	assert.Equal(t, "https://github.example.com/api/v3", cfg.GitHub.URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "empty url",
			content: `
github:
  url: ""
`,
			errMsg: "github.url is required",
		},
		{
			name: "bad logging level",
			content: `
logging:
  level: verbose
`,
			errMsg: "invalid logging level",
		},
		{
			name: "bad logging format",
			content: `
logging:
  format: xml
`,
			errMsg: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
