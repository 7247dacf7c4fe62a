package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersionStampsRootCommand(t *testing.T) {
	oldVersion, oldBuildTime, oldCmdVersion := version, buildTime, rootCmd.Version
	t.Cleanup(func() {
		version, buildTime, rootCmd.Version = oldVersion, oldBuildTime, oldCmdVersion
	})

	SetVersion("1.2.3", "2026-08-01T12:00:00Z")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "2026-08-01T12:00:00Z", buildTime)
	assert.Equal(t, "1.2.3 (built 2026-08-01T12:00:00Z)", rootCmd.Version)
}

func TestSplitRepo(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		owner   string
		repo    string
		wantErr bool
	}{
		{"valid", "octocat/hello-world", "octocat", "hello-world", false},
		{"missing repo", "octocat", "", "", true},
		{"empty owner", "/hello-world", "", "", true},
		{"empty repo", "octocat/", "", "", true},
		{"extra slash stays in repo", "octocat/a/b", "octocat", "a/b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := splitRepo(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}
