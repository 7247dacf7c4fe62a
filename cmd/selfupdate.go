package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const updateRepo = "rask0ln/hubgrab"

// selfupdateCmd represents the selfupdate command
var selfupdateCmd = &cobra.Command{
	Use:   "selfupdate",
	Short: "Update hubgrab to the latest release",
	Long:  `Check the project's releases for a newer version and replace the current binary with it.`,
	RunE:  runSelfupdate,
}

func init() {
	rootCmd.AddCommand(selfupdateCmd)
}

func runSelfupdate(cmd *cobra.Command, args []string) error {
	if version == "dev" {
		fmt.Println("Development build; skipping self-update.")
		return nil
	}

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot parse current version %q: %w", version, err)
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(updateRepo))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found || !latest.GreaterThan(current.String()) {
		fmt.Printf("Already up to date (v%s).\n", current)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("Updating v%s → v%s...\n", current, latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Printf("✓ Updated to v%s\n", latest.Version())
	return nil
}
