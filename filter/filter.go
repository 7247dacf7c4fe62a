// Package filter compiles client-side match expressions over fetched
// issues. Expressions use the expr language with the issue's fields
// and a set of helpers in scope:
//
//	comments > 10 && hasLabel("bug")
//	daysSince(UpdatedAt) > 90 && !IsPullRequest
//	Author == "octocat" || assignedTo("ferris")
//
// Compilation and evaluation are separate steps so one expression can
// be checked once and run against many issues.
package filter

import (
	"github.com/rask0ln/hubgrab/issues"
)

// Filter decides whether an issue matches.
type Filter interface {
	// Evaluate checks if an issue matches the filter criteria
	Evaluate(issue issues.Issue) bool
}

// CompiledFilter is a pre-compiled filter ready for evaluation.
type CompiledFilter interface {
	Filter

	// EvaluateStrict reports whether the issue matches, returning an
	// EvaluationError on run failures instead of dropping the issue
	EvaluateStrict(issue issues.Issue) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters.
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// ParseAndCreateFilter compiles an expression with a default compiler
// and returns it as a plain match function.
func ParseAndCreateFilter(expression string) (func(issues.Issue) bool, error) {
	compiled, err := NewExprCompiler().Compile(expression)
	if err != nil {
		return nil, err
	}
	return compiled.Evaluate, nil
}

// Apply keeps the issues that match.
func Apply(match func(issues.Issue) bool, items []issues.Issue) []issues.Issue {
	var matched []issues.Issue
	for _, issue := range items {
		if match(issue) {
			matched = append(matched, issue)
		}
	}
	return matched
}
