package pulls

import (
	"context"
	"fmt"

	"github.com/rask0ln/hubgrab"
)

type createBody struct {
	Title               string  `json:"title"`
	Head                string  `json:"head"`
	Base                string  `json:"base"`
	Body                *string `json:"body,omitempty"`
	Draft               *bool   `json:"draft,omitempty"`
	MaintainerCanModify *bool   `json:"maintainer_can_modify,omitempty"`
}

// CreateBuilder accumulates the optional fields for opening a pull
// request. Send is terminal and the builder must not be reused
// afterwards.
type CreateBuilder struct {
	handler *Handler
	body    createBody
}

// Body sets the description of the pull request.
func (b *CreateBuilder) Body(body string) *CreateBuilder {
	b.body.Body = &body
	return b
}

// Draft marks the pull request as a draft.
func (b *CreateBuilder) Draft(draft bool) *CreateBuilder {
	b.body.Draft = &draft
	return b
}

// MaintainerCanModify lets repository maintainers push to the head
// branch.
func (b *CreateBuilder) MaintainerCanModify(allowed bool) *CreateBuilder {
	b.body.MaintainerCanModify = &allowed
	return b
}

// Send opens the pull request and returns it.
func (b *CreateBuilder) Send(ctx context.Context) (*PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", b.handler.owner, b.handler.repo)
	return hubgrab.Post[PullRequest](ctx, b.handler.client, path, &b.body)
}
