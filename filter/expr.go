package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rask0ln/hubgrab/issues"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables compiled-filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Compile with the static helper environment for validation; issue
	// fields are only known at evaluation time.
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &exprFilter{expression: expression, program: program}
	if c.cache != nil {
		c.cache.Put(expression, compiled)
	}
	return compiled, nil
}

// Evaluate evaluates the filter against an issue. Issues whose
// evaluation errors are treated as non-matching.
func (f *exprFilter) Evaluate(issue issues.Issue) bool {
	matched, err := f.EvaluateStrict(issue)
	if err != nil {
		return false
	}
	return matched
}

// EvaluateStrict evaluates the filter and surfaces run errors instead
// of treating the issue as non-matching.
func (f *exprFilter) EvaluateStrict(issue issues.Issue) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(issue))
	if err != nil {
		return false, &EvaluationError{
			Expression:  f.expression,
			IssueNumber: issue.Number,
			Reason:      "failed to evaluate expression",
			Err:         err,
		}
	}
	// AsBool() at compile time guarantees the assertion holds
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all shared helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment exposes an issue's fields and per-issue
// helpers for filter evaluation
func createRuntimeEnvironment(issue issues.Issue) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Number"] = issue.Number
	env["Title"] = issue.Title
	env["Body"] = issue.Body
	env["State"] = issue.State
	env["Author"] = issue.User.Login
	env["Comments"] = issue.Comments
	env["Labels"] = issue.LabelNames()
	env["Assignees"] = issue.AssigneeLogins()
	env["Milestone"] = issue.MilestoneTitle()
	env["HasMilestone"] = issue.Milestone != nil
	env["IsPullRequest"] = issue.IsPullRequest()
	env["CreatedAt"] = issue.CreatedAt
	env["UpdatedAt"] = issue.UpdatedAt
	env["IsClosed"] = issue.ClosedAt != nil

	// Aliases matching the wire field names
	env["comments"] = issue.Comments
	env["state"] = issue.State

	env["hasLabel"] = func(name string) bool {
		for _, label := range issue.Labels {
			if strings.EqualFold(label.Name, name) {
				return true
			}
		}
		return false
	}
	env["assignedTo"] = func(login string) bool {
		for _, user := range issue.Assignees {
			if strings.EqualFold(user.Login, login) {
				return true
			}
		}
		return false
	}

	return env
}
