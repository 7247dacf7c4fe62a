package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/issues"
	"github.com/rask0ln/hubgrab/params"
	"github.com/rask0ln/hubgrab/pulls"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary <owner/repo>",
	Short: "Show open issue and pull request counts for a repository",
	Long: `Fetch the open issues and open pull requests of a repository
concurrently and print a short overview. Each list is an independent
request with its own builder, so the two fetches run in parallel.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepo(args[0])
	if err != nil {
		return err
	}

	var (
		openIssues []issues.Issue
		openPulls  []pulls.PullRequest
	)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		page, err := issues.NewHandler(client, owner, repo).List().
			State(params.StateOpen).
			PerPage(100).
			Send(ctx)
		if err != nil {
			return fmt.Errorf("failed to list issues: %w", err)
		}
		openIssues, err = hubgrab.All(ctx, page)
		return err
	})

	g.Go(func() error {
		page, err := pulls.NewHandler(client, owner, repo).List().
			State(params.StateOpen).
			PerPage(100).
			Send(ctx)
		if err != nil {
			return fmt.Errorf("failed to list pull requests: %w", err)
		}
		openPulls, err = hubgrab.All(ctx, page)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	// The issues endpoint counts pull requests too; separate them
	var plainIssues int
	for _, issue := range openIssues {
		if !issue.IsPullRequest() {
			plainIssues++
		}
	}

	fmt.Printf("\n%s/%s\n", owner, repo)
	fmt.Printf("- Open issues:        %d\n", plainIssues)
	fmt.Printf("- Open pull requests: %d\n", len(openPulls))

	return nil
}
