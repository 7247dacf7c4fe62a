package pulls

import (
	"time"

	"github.com/rask0ln/hubgrab/issues"
)

// Ref is one side of a pull request: a branch in some repository.
type Ref struct {
	Label string `json:"label"`
	Ref   string `json:"ref"`
	SHA   string `json:"sha"`
}

// PullRequest is a single pull request as returned by the API.
type PullRequest struct {
	ID                  int64           `json:"id"`
	Number              uint64          `json:"number"`
	State               string          `json:"state"`
	Title               string          `json:"title"`
	Body                string          `json:"body,omitempty"`
	User                issues.User     `json:"user"`
	Labels              []issues.Label  `json:"labels,omitempty"`
	Draft               bool            `json:"draft"`
	Merged              bool            `json:"merged,omitempty"`
	MergedAt            *time.Time      `json:"merged_at,omitempty"`
	Head                Ref             `json:"head"`
	Base                Ref             `json:"base"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	ClosedAt            *time.Time      `json:"closed_at,omitempty"`
	HTMLURL             string          `json:"html_url,omitempty"`
	MaintainerCanModify bool            `json:"maintainer_can_modify,omitempty"`
}

// IsOpen reports whether the pull request is still open.
func (p *PullRequest) IsOpen() bool {
	return p.State == "open"
}
