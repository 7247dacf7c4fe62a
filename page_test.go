package hubgrab

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name: "next and last",
			header: `<https://api.github.com/repositories/1/issues?page=2>; rel="next", ` +
				`<https://api.github.com/repositories/1/issues?page=5>; rel="last"`,
			want: map[string]string{
				"next": "https://api.github.com/repositories/1/issues?page=2",
				"last": "https://api.github.com/repositories/1/issues?page=5",
			},
		},
		{
			name:   "empty header",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "malformed entry skipped",
			header: `garbage, <https://example.com?page=2>; rel="prev"`,
			want:   map[string]string{"prev": "https://example.com?page=2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := parseLinkHeader(tt.header)
			got := make(map[string]string, len(links))
			for rel, u := range links {
				got[rel] = u.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPage(t *testing.T) {
	type item struct {
		Number int `json:"number"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=2>; rel="next", <%s/items?page=2>; rel="last"`, "http://"+r.Host, "http://"+r.Host))
			fmt.Fprint(w, `[{"number":1},{"number":2}]`)
		case "2":
			w.Header().Set("Link", fmt.Sprintf(`<%s/items?page=1>; rel="prev"`, "http://"+r.Host))
			fmt.Fprint(w, `[{"number":3}]`)
		default:
			t.Fatalf("unexpected page %q", page)
		}
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	ctx := context.Background()

	first, err := GetPage[item](ctx, client, "/items", nil)
	require.NoError(t, err)
	assert.Len(t, first.Items, 2)
	require.True(t, first.HasNext())
	assert.Nil(t, first.Prev)

	second, err := first.NextPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, []item{{Number: 3}}, second.Items)
	assert.False(t, second.HasNext())

	// Last page has no next
	end, err := second.NextPage(ctx)
	require.NoError(t, err)
	assert.Nil(t, end)

	// And back again via prev
	back, err := second.PrevPage(ctx)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Len(t, back.Items, 2)
}

func TestAllDrainsEveryPage(t *testing.T) {
	type item struct {
		Number int `json:"number"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/items?page=2>; rel="next"`, r.Host))
			fmt.Fprint(w, `[{"number":1}]`)
		case "2":
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/items?page=3>; rel="next"`, r.Host))
			fmt.Fprint(w, `[{"number":2}]`)
		case "3":
			fmt.Fprint(w, `[{"number":3}]`)
		}
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	first, err := GetPage[item](context.Background(), client, "/items", nil)
	require.NoError(t, err)

	all, err := All(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, []item{{Number: 1}, {Number: 2}, {Number: 3}}, all)
}

func TestPageDecodeError(t *testing.T) {
	const body = `{"not":"a list"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	_, err := GetPage[struct{}](context.Background(), client, "/items", nil)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, body, string(decodeErr.Body))
}
