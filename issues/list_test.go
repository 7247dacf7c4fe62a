package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rask0ln/hubgrab"
	"github.com/rask0ln/hubgrab/params"
)

func TestListBuilderSerialize(t *testing.T) {
	client := hubgrab.NewClient()
	handler := NewHandler(client, "rust-lang", "rust")

	list := handler.List().
		State(params.StateOpen).
		Milestone(params.Matching(uint64(1234))).
		Assignee(params.Matching("ferris")).
		Creator("hubgrab-ci").
		Mentioned("octocat").
		Labels([]string{"help wanted", "good first issue"}).
		Sort(params.IssueSortComments).
		Direction(params.Ascending).
		PerPage(100).
		Page(1)

	data, err := json.Marshal(list)
	require.NoError(t, err)

	var got map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	require.NoError(t, decoder.Decode(&got))

	want := map[string]any{
		"state":     "open",
		"milestone": json.Number("1234"),
		"assignee":  "ferris",
		"creator":   "hubgrab-ci",
		"mentioned": "octocat",
		"labels":    []any{"help wanted", "good first issue"},
		"sort":      "comments",
		"direction": "asc",
		"per_page":  json.Number("100"),
		"page":      json.Number("1"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("serialized query mismatch (-want +got):\n%s", diff)
	}
}

func TestListBuilderSerializeOnlySetFields(t *testing.T) {
	client := hubgrab.NewClient()

	list := NewHandler(client, "o", "r").List().
		State(params.StateClosed).
		PerPage(50)

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"closed","per_page":50}`, string(data))
}

func TestListBuilderSerializeEmpty(t *testing.T) {
	client := hubgrab.NewClient()

	data, err := json.Marshal(NewHandler(client, "o", "r").List())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestListBuilderSerializeIdempotent(t *testing.T) {
	client := hubgrab.NewClient()

	list := NewHandler(client, "o", "r").List().
		State(params.StateOpen).
		Milestone(params.Wildcard[uint64]()).
		Assignee(params.None[string]()).
		Labels([]string{"bug"})

	first, err := json.Marshal(list)
	require.NoError(t, err)
	second, err := json.Marshal(list)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestListBuilderFilterSentinels(t *testing.T) {
	client := hubgrab.NewClient()

	list := NewHandler(client, "o", "r").List().
		Milestone(params.None[uint64]()).
		Assignee(params.Wildcard[string]())

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `{"milestone":"none","assignee":"*"}`, string(data))
}

func TestListSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/rust-lang/rust/issues", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "open", query.Get("state"))
		assert.Equal(t, "*", query.Get("milestone"))
		assert.Equal(t, "help wanted,good first issue", query.Get("labels"))
		assert.Equal(t, "comments", query.Get("sort"))
		// Fields that were never set must be absent, not empty
		_, hasAssignee := query["assignee"]
		assert.False(t, hasAssignee)

		fmt.Fprint(w, `[
			{"id":1,"number":101,"state":"open","title":"first","user":{"id":9,"login":"octocat"},"comments":3},
			{"id":2,"number":102,"state":"open","title":"second","user":{"id":9,"login":"octocat"},"comments":0,"pull_request":{"url":"x"}}
		]`)
	}))
	defer server.Close()

	client := hubgrab.NewClient(hubgrab.WithBaseURL(server.URL))

	page, err := NewHandler(client, "rust-lang", "rust").List().
		State(params.StateOpen).
		Milestone(params.Wildcard[uint64]()).
		Labels([]string{"help wanted", "good first issue"}).
		Sort(params.IssueSortComments).
		Send(context.Background())
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, uint64(101), page.Items[0].Number)
	assert.Equal(t, "octocat", page.Items[0].User.Login)
	assert.False(t, page.Items[0].IsPullRequest())
	assert.True(t, page.Items[1].IsPullRequest())
	assert.False(t, page.HasNext())
}

func TestGetIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/o/r/issues/7", r.URL.Path)
		fmt.Fprint(w, `{"id":1,"number":7,"state":"open","title":"a bug","user":{"id":2,"login":"ferris"},"comments":1,"labels":[{"id":3,"name":"bug"}]}`)
	}))
	defer server.Close()

	client := hubgrab.NewClient(hubgrab.WithBaseURL(server.URL))

	issue, err := NewHandler(client, "o", "r").Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), issue.Number)
	assert.Equal(t, []string{"bug"}, issue.LabelNames())
}
