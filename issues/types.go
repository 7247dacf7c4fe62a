package issues

import "time"

// User is the account attached to an issue as author, assignee or
// mention target.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Label is a repository label applied to an issue.
type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// Milestone groups issues under a shared target.
type Milestone struct {
	ID           int64      `json:"id"`
	Number       uint64     `json:"number"`
	Title        string     `json:"title"`
	State        string     `json:"state,omitempty"`
	Description  string     `json:"description,omitempty"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
	DueOn        *time.Time `json:"due_on,omitempty"`
}

// pullRequestLink marks an issue that is really a pull request; the
// issues list endpoint returns both.
type pullRequestLink struct {
	URL string `json:"url"`
}

// Issue is a single issue as returned by the API.
type Issue struct {
	ID          int64            `json:"id"`
	Number      uint64           `json:"number"`
	State       string           `json:"state"`
	Title       string           `json:"title"`
	Body        string           `json:"body,omitempty"`
	User        User             `json:"user"`
	Labels      []Label          `json:"labels,omitempty"`
	Assignee    *User            `json:"assignee,omitempty"`
	Assignees   []User           `json:"assignees,omitempty"`
	Milestone   *Milestone       `json:"milestone,omitempty"`
	Comments    int              `json:"comments"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	ClosedAt    *time.Time       `json:"closed_at,omitempty"`
	HTMLURL     string           `json:"html_url,omitempty"`
	PullRequest *pullRequestLink `json:"pull_request,omitempty"`
}

// IsPullRequest reports whether this issue is actually a pull request
// surfaced through the issues endpoint.
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// LabelNames returns the plain names of the issue's labels.
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, label := range i.Labels {
		names = append(names, label.Name)
	}
	return names
}

// AssigneeLogins returns the logins of every assigned user.
func (i *Issue) AssigneeLogins() []string {
	logins := make([]string, 0, len(i.Assignees))
	for _, user := range i.Assignees {
		logins = append(logins, user.Login)
	}
	return logins
}

// MilestoneTitle returns the milestone title, or an empty string when
// the issue has none.
func (i *Issue) MilestoneTitle() string {
	if i.Milestone == nil {
		return ""
	}
	return i.Milestone.Title
}
