package pulls

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/params"
)

type listQuery struct {
	State     *params.State     `json:"state,omitempty"`
	Head      *string           `json:"head,omitempty"`
	Base      *string           `json:"base,omitempty"`
	Sort      *params.PullSort  `json:"sort,omitempty"`
	Direction *params.Direction `json:"direction,omitempty"`
	PerPage   *uint8            `json:"per_page,omitempty"`
	Page      *uint32           `json:"page,omitempty"`
}

// ListBuilder accumulates filters for the pull request list endpoint.
// Setters chain; Send is terminal and the builder must not be reused
// afterwards.
type ListBuilder struct {
	handler *Handler
	query   listQuery
}

// State filters pull requests by open/closed state.
func (b *ListBuilder) State(state params.State) *ListBuilder {
	b.query.State = &state
	return b
}

// Head filters by head branch. For cross-repository pull requests use
// the "user:branch" form.
func (b *ListBuilder) Head(head string) *ListBuilder {
	b.query.Head = &head
	return b
}

// Base filters by the branch the changes are requested into.
func (b *ListBuilder) Base(base string) *ListBuilder {
	b.query.Base = &base
	return b
}

// Sort sets what to sort results by: created, updated, popularity, or
// long-running.
func (b *ListBuilder) Sort(sort params.PullSort) *ListBuilder {
	b.query.Sort = &sort
	return b
}

// Direction sets the sort direction.
func (b *ListBuilder) Direction(direction params.Direction) *ListBuilder {
	b.query.Direction = &direction
	return b
}

// PerPage sets the number of results per page (max 100). The cap is
// enforced by the API, not here.
func (b *ListBuilder) PerPage(perPage uint8) *ListBuilder {
	b.query.PerPage = &perPage
	return b
}

// Page sets the page number of the results to fetch.
func (b *ListBuilder) Page(page uint32) *ListBuilder {
	b.query.Page = &page
	return b
}

// MarshalJSON serializes exactly the fields that were set.
func (b *ListBuilder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.query)
}

// Send issues the request and returns the first page of matching pull
// requests.
func (b *ListBuilder) Send(ctx context.Context) (*hubgrab.Page[PullRequest], error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", b.handler.owner, b.handler.repo)
	return hubgrab.GetPage[PullRequest](ctx, b.handler.client, path, &b.query)
}
