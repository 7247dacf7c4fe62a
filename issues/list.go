package issues

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/params"
)

// listQuery holds the optional parameters of the list endpoint. Nil
// fields are omitted from the serialized request entirely; the JSON
// field order is fixed by declaration so repeated serialization of the
// same builder is byte-identical.
type listQuery struct {
	State     *params.State          `json:"state,omitempty"`
	Milestone *params.Filter[uint64] `json:"milestone,omitempty"`
	Assignee  *params.Filter[string] `json:"assignee,omitempty"`
	Creator   *string                `json:"creator,omitempty"`
	Mentioned *string                `json:"mentioned,omitempty"`
	Labels    []string               `json:"labels,omitempty"`
	Sort      *params.IssueSort      `json:"sort,omitempty"`
	Direction *params.Direction      `json:"direction,omitempty"`
	PerPage   *uint8                 `json:"per_page,omitempty"`
	Page      *uint32                `json:"page,omitempty"`
}

// ListBuilder accumulates filters for the issue list endpoint. Each
// setter is a plain in-memory assignment returning the builder, so
// calls chain; Send is terminal. A builder belongs to one logical flow
// of control and is spent once Send returns.
type ListBuilder struct {
	handler *Handler
	query   listQuery
}

// State filters issues by open/closed state.
func (b *ListBuilder) State(state params.State) *ListBuilder {
	b.query.State = &state
	return b
}

// Milestone filters by milestone. A concrete value refers to a
// milestone by its number field; use params.Wildcard for issues with
// any milestone and params.None for issues without one.
func (b *ListBuilder) Milestone(milestone params.Filter[uint64]) *ListBuilder {
	b.query.Milestone = &milestone
	return b
}

// Assignee filters by assignee login. Use params.None for issues with
// no assigned user and params.Wildcard for issues assigned to anyone.
func (b *ListBuilder) Assignee(assignee params.Filter[string]) *ListBuilder {
	b.query.Assignee = &assignee
	return b
}

// Creator filters by the user that opened the issue.
func (b *ListBuilder) Creator(creator string) *ListBuilder {
	b.query.Creator = &creator
	return b
}

// Mentioned filters for issues that mention the given user.
func (b *ListBuilder) Mentioned(mentioned string) *ListBuilder {
	b.query.Mentioned = &mentioned
	return b
}

// Labels filters for issues carrying every one of the given labels.
func (b *ListBuilder) Labels(labels []string) *ListBuilder {
	b.query.Labels = labels
	return b
}

// Sort sets what to sort results by: created, updated, or comments.
func (b *ListBuilder) Sort(sort params.IssueSort) *ListBuilder {
	b.query.Sort = &sort
	return b
}

// Direction sets the sort direction. The API defaults to descending
// unless sorting by something other than creation time.
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

// Send issues the request and returns the first page of matching
// issues. The builder must not be reused afterwards.
func (b *ListBuilder) Send(ctx context.Context) (*hubgrab.Page[Issue], error) {
	path := fmt.Sprintf("/repos/%s/%s/issues", b.handler.owner, b.handler.repo)
	return hubgrab.GetPage[Issue](ctx, b.handler.client, path, &b.query)
}
