package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/params"
	"github.com/rask0ln/hubgrab/pulls"
)

var (
	pullState     string
	pullHead      string
	pullBase      string
	pullSort      string
	pullDirection string
	pullPerPage   uint8
	pullPage      uint32
)

// pullsCmd represents the pulls command
var pullsCmd = &cobra.Command{
	Use:   "pulls <owner/repo>",
	Short: "List pull requests matching the given filters",
	Args:  cobra.ExactArgs(1),
	RunE:  runPulls,
}

// mergedCmd checks whether a single pull request has been merged
var mergedCmd = &cobra.Command{
	Use:   "merged <owner/repo> <number>",
	Short: "Check whether a pull request has been merged",
	Args:  cobra.ExactArgs(2),
	RunE:  runMerged,
}

func init() {
	rootCmd.AddCommand(pullsCmd)
	pullsCmd.AddCommand(mergedCmd)

	pullsCmd.Flags().StringVar(&pullState, "state", "", "filter by state (open/closed/all)")
	pullsCmd.Flags().StringVar(&pullHead, "head", "", "filter by head branch (user:branch for forks)")
	pullsCmd.Flags().StringVar(&pullBase, "base", "", "filter by base branch")
	pullsCmd.Flags().StringVar(&pullSort, "sort", "", "sort by created, updated, popularity or long-running")
	pullsCmd.Flags().StringVar(&pullDirection, "direction", "", "sort direction (asc/desc)")
	pullsCmd.Flags().Uint8Var(&pullPerPage, "per-page", 0, "results per page (max 100)")
	pullsCmd.Flags().Uint32Var(&pullPage, "page", 0, "page number to fetch")
	pullsCmd.Flags().BoolVar(&fetchAll, "all", false, "follow pagination and fetch every page")
}

func runPulls(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepo(args[0])
	if err != nil {
		return err
	}

	builder := pulls.NewHandler(client, owner, repo).List()
	if err := applyPullFlags(builder); err != nil {
		return err
	}

	logger.Info().Str("repo", args[0]).Msg("Listing pull requests")

	ctx := context.Background()
	page, err := builder.Send(ctx)
	if err != nil {
		return err
	}

	var results []pulls.PullRequest
	if fetchAll {
		results, err = hubgrab.All(ctx, page)
		if err != nil {
			return err
		}
	} else {
		results = page.Items
	}

	if len(results) == 0 {
		fmt.Println("No pull requests found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d pull requests:\n", len(results))
	fmt.Println(strings.Repeat("-", 80))

	for _, pr := range results {
		fmt.Printf("• #%d %s", pr.Number, pr.Title)
		if pr.Draft {
			fmt.Printf(" [DRAFT]")
		}
		fmt.Println()
		if cfg.Output.ShowDetails {
			fmt.Printf("  Author: %s  State: %s  %s → %s\n", pr.User.Login, pr.State, pr.Head.Ref, pr.Base.Ref)
			fmt.Printf("  Created: %s\n", pr.CreatedAt.Format("2006-01-02"))
		}
	}

	if !fetchAll && page.HasNext() {
		fmt.Println(strings.Repeat("-", 80))
		fmt.Println("More pages available; rerun with --all or --page.")
	}

	return nil
}

func runMerged(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepo(args[0])
	if err != nil {
		return err
	}
	number, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid pull request number %q", args[1])
	}

	merged, err := pulls.NewHandler(client, owner, repo).IsMerged(context.Background(), number)
	if err != nil {
		return err
	}

	if merged {
		fmt.Printf("✓ Pull request #%d has been merged.\n", number)
	} else {
		fmt.Printf("✗ Pull request #%d has not been merged.\n", number)
	}
	return nil
}

func applyPullFlags(builder *pulls.ListBuilder) error {
	if pullState != "" {
		state, err := parseState(pullState)
		if err != nil {
			return err
		}
		builder.State(state)
	}
	if pullHead != "" {
		builder.Head(pullHead)
	}
	if pullBase != "" {
		builder.Base(pullBase)
	}
	if pullSort != "" {
		switch params.PullSort(pullSort) {
		case params.PullSortCreated, params.PullSortUpdated, params.PullSortPopularity, params.PullSortLongRunning:
			builder.Sort(params.PullSort(pullSort))
		default:
			return fmt.Errorf("invalid sort %q: must be created, updated, popularity or long-running", pullSort)
		}
	}
	if pullDirection != "" {
		direction, err := parseDirection(pullDirection)
		if err != nil {
			return err
		}
		builder.Direction(direction)
	}
	if pullPerPage > 0 {
		builder.PerPage(pullPerPage)
	}
	if pullPage > 0 {
		builder.Page(pullPage)
	}
	return nil
}
