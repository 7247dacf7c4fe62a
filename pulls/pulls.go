// Package pulls provides a typed client for a repository's pull
// request endpoints.
package pulls

import (
	"context"
	"fmt"

	"github.com/rask0ln/hubgrab"
)

// Handler is a pull request client scoped to a single repository.
type Handler struct {
	client *hubgrab.Client
	owner  string
	repo   string
}

// NewHandler creates a pull request handler for owner/repo.
func NewHandler(client *hubgrab.Client, owner, repo string) *Handler {
	return &Handler{client: client, owner: owner, repo: repo}
}

// List returns a builder for the pull request list endpoint.
func (h *Handler) List() *ListBuilder {
	return &ListBuilder{handler: h}
}

// Get fetches a single pull request by number.
func (h *Handler) Get(ctx context.Context, number uint64) (*PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", h.owner, h.repo, number)
	return hubgrab.Get[PullRequest](ctx, h.client, path, nil)
}

// IsMerged checks whether a pull request has been merged. The merge
// endpoint answers with a bare 204 and no body when it has; any other
// status means it has not.
func (h *Handler) IsMerged(ctx context.Context, number uint64) (bool, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d/merge", h.owner, h.repo, number)
	return h.client.Exists(ctx, path)
}

// Create starts a builder for opening a new pull request. Title, head
// and base are required; everything else is optional.
func (h *Handler) Create(title, head, base string) *CreateBuilder {
	return &CreateBuilder{
		handler: h,
		body: createBody{
			Title: title,
			Head:  head,
			Base:  base,
		},
	}
}
