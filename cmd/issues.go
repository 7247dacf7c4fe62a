package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/filter"
	"github.com/rask0ln/hubgrab/issues"
	"github.com/rask0ln/hubgrab/params"
)

var (
	issueState     string
	issueMilestone string
	issueAssignee  string
	issueCreator   string
	issueMentioned string
	issueLabels    []string
	issueSort      string
	issueDirection string
	issuePerPage   uint8
	issuePage      uint32
)

// issuesCmd represents the issues command
var issuesCmd = &cobra.Command{
	Use:   "issues <owner/repo>",
	Short: "List issues matching the given filters",
	Long: `List issues of a repository. Server-side filters map directly onto
the list endpoint's parameters; --match applies an additional
client-side filter expression to the fetched results.

The milestone and assignee filters accept the API's overloaded
sentinels: '*' matches any value and 'none' matches explicit absence.`,
	Args: cobra.ExactArgs(1),
	RunE: runIssues,
}

func init() {
	rootCmd.AddCommand(issuesCmd)

	issuesCmd.Flags().StringVar(&issueState, "state", "", "filter by state (open/closed/all)")
	issuesCmd.Flags().StringVar(&issueMilestone, "milestone", "", "filter by milestone number, '*' or 'none'")
	issuesCmd.Flags().StringVar(&issueAssignee, "assignee", "", "filter by assignee login, '*' or 'none'")
	issuesCmd.Flags().StringVar(&issueCreator, "creator", "", "filter by the user that opened the issue")
	issuesCmd.Flags().StringVar(&issueMentioned, "mentioned", "", "filter by mentioned user")
	issuesCmd.Flags().StringSliceVar(&issueLabels, "labels", nil, "filter by labels (all must match)")
	issuesCmd.Flags().StringVar(&issueSort, "sort", "", "sort by created, updated or comments")
	issuesCmd.Flags().StringVar(&issueDirection, "direction", "", "sort direction (asc/desc)")
	issuesCmd.Flags().Uint8Var(&issuePerPage, "per-page", 0, "results per page (max 100)")
	issuesCmd.Flags().Uint32Var(&issuePage, "page", 0, "page number to fetch")
	issuesCmd.Flags().BoolVar(&fetchAll, "all", false, "follow pagination and fetch every page")
	issuesCmd.Flags().StringVarP(&filterExpr, "match", "m", "", "client-side filter expression")
	issuesCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runIssues(cmd *cobra.Command, args []string) error {
	owner, repo, err := splitRepo(args[0])
	if err != nil {
		return err
	}

	builder := issues.NewHandler(client, owner, repo).List()
	if err := applyIssueFlags(builder); err != nil {
		return err
	}

	logger.Info().Str("repo", args[0]).Msg("Listing issues")

	ctx := context.Background()
	page, err := builder.Send(ctx)
	if err != nil {
		return err
	}

	var results []issues.Issue
	if fetchAll {
		results, err = hubgrab.All(ctx, page)
		if err != nil {
			return err
		}
	} else {
		results = page.Items
	}

	// Client-side filter, when one is configured
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		match, err := filter.ParseAndCreateFilter(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		results = filter.Apply(match, results)
	}

	if len(results) == 0 {
		fmt.Println("No issues found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d issues:\n", len(results))
	fmt.Println(strings.Repeat("-", 80))

	for _, issue := range results {
		fmt.Printf("• #%d %s", issue.Number, issue.Title)
		if issue.IsPullRequest() {
			fmt.Printf(" [PR]")
		}
		fmt.Println()
		if cfg.Output.ShowDetails {
			fmt.Printf("  Author: %s  State: %s  Comments: %d\n", issue.User.Login, issue.State, issue.Comments)
			if len(issue.Labels) > 0 {
				fmt.Printf("  Labels: %s\n", strings.Join(issue.LabelNames(), ", "))
			}
			fmt.Printf("  Created: %s\n", issue.CreatedAt.Format("2006-01-02"))
		}
	}

	if !fetchAll && page.HasNext() {
		fmt.Println(strings.Repeat("-", 80))
		fmt.Println("More pages available; rerun with --all or --page.")
	}

	return nil
}

// applyIssueFlags sets only the builder fields whose flags were given,
// so unset flags stay out of the request entirely.
func applyIssueFlags(builder *issues.ListBuilder) error {
	if issueState != "" {
		state, err := parseState(issueState)
		if err != nil {
			return err
		}
		builder.State(state)
	}
	if issueMilestone != "" {
		milestone, err := parseMilestoneFilter(issueMilestone)
		if err != nil {
			return err
		}
		builder.Milestone(milestone)
	}
	if issueAssignee != "" {
		builder.Assignee(params.ParseFilter(issueAssignee))
	}
	if issueCreator != "" {
		builder.Creator(issueCreator)
	}
	if issueMentioned != "" {
		builder.Mentioned(issueMentioned)
	}
	if len(issueLabels) > 0 {
		builder.Labels(issueLabels)
	}
	if issueSort != "" {
		switch params.IssueSort(issueSort) {
		case params.IssueSortCreated, params.IssueSortUpdated, params.IssueSortComments:
			builder.Sort(params.IssueSort(issueSort))
		default:
			return fmt.Errorf("invalid sort %q: must be created, updated or comments", issueSort)
		}
	}
	if issueDirection != "" {
		direction, err := parseDirection(issueDirection)
		if err != nil {
			return err
		}
		builder.Direction(direction)
	}
	if issuePerPage > 0 {
		builder.PerPage(issuePerPage)
	}
	if issuePage > 0 {
		builder.Page(issuePage)
	}
	return nil
}

func parseState(raw string) (params.State, error) {
	switch params.State(raw) {
	case params.StateOpen, params.StateClosed, params.StateAll:
		return params.State(raw), nil
	}
	return "", fmt.Errorf("invalid state %q: must be open, closed or all", raw)
}

func parseDirection(raw string) (params.Direction, error) {
	switch raw {
	case "asc", "ascending":
		return params.Ascending, nil
	case "desc", "descending":
		return params.Descending, nil
	}
	return "", fmt.Errorf("invalid direction %q: must be asc or desc", raw)
}

func parseMilestoneFilter(raw string) (params.Filter[uint64], error) {
	switch raw {
	case "*":
		return params.Wildcard[uint64](), nil
	case "none":
		return params.None[uint64](), nil
	}
	number, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return params.Filter[uint64]{}, fmt.Errorf("invalid milestone %q: must be a number, '*' or 'none'", raw)
	}
	return params.Matching(number), nil
}
