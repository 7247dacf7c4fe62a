// Package issues provides a typed client for a repository's issues
// endpoints.
//
// A Handler is scoped to one owner/repo pair. Listing goes through a
// fluent builder: configure only the filters you need, then call Send.
//
//	page, err := issues.NewHandler(client, "rust-lang", "rust").List().
//		State(params.StateOpen).
//		Assignee(params.ParseFilter("*")).
//		Sort(params.IssueSortComments).
//		Send(ctx)
package issues

import (
	"context"
	"fmt"

	"github.com/rask0ln/hubgrab"
)

// Handler is an issues client scoped to a single repository. The owner
// and repo strings are interpolated into request paths as-is; they are
// not validated here.
type Handler struct {
	client *hubgrab.Client
	owner  string
	repo   string
}

// NewHandler creates an issues handler for owner/repo.
func NewHandler(client *hubgrab.Client, owner, repo string) *Handler {
	return &Handler{client: client, owner: owner, repo: repo}
}

// List returns a builder for the issue list endpoint.
func (h *Handler) List() *ListBuilder {
	return &ListBuilder{handler: h}
}

// Get fetches a single issue by number.
func (h *Handler) Get(ctx context.Context, number uint64) (*Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", h.owner, h.repo, number)
	return hubgrab.Get[Issue](ctx, h.client, path, nil)
}
