package hubgrab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Page is one page of a list response. Items holds the decoded
// elements and the relation URLs come from the Link response header.
// A page is immutable once constructed; following a relation issues a
// fresh request and yields a new page.
type Page[T any] struct {
	Items []T

	First *url.URL
	Prev  *url.URL
	Next  *url.URL
	Last  *url.URL

	client *Client
}

// GetPage issues a GET for a list endpoint and wraps the decoded
// elements together with the pagination links the API returned.
func GetPage[T any](ctx context.Context, c *Client, path string, query any) (*Page[T], error) {
	u, err := c.requestURL(path, query)
	if err != nil {
		return nil, err
	}
	return fetchPage[T](ctx, c, u)
}

func fetchPage[T any](ctx context.Context, c *Client, u *url.URL) (*Page[T], error) {
	resp, raw, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, newDecodeError(raw, err)
	}

	page := &Page[T]{Items: items, client: c}
	links := parseLinkHeader(resp.Header.Get("Link"))
	page.First = links["first"]
	page.Prev = links["prev"]
	page.Next = links["next"]
	page.Last = links["last"]
	return page, nil
}

// HasNext reports whether the API advertised a further page.
func (p *Page[T]) HasNext() bool {
	return p.Next != nil
}

// NextPage fetches the page the Next link points at, or nil when this
// is the last page.
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	if p.Next == nil {
		return nil, nil
	}
	return fetchPage[T](ctx, p.client, p.Next)
}

// PrevPage fetches the page the Prev link points at, or nil when this
// is the first page.
func (p *Page[T]) PrevPage(ctx context.Context) (*Page[T], error) {
	if p.Prev == nil {
		return nil, nil
	}
	return fetchPage[T](ctx, p.client, p.Prev)
}

// All drains the page chain starting at page, following Next links
// until the end, and returns every item in order.
func All[T any](ctx context.Context, page *Page[T]) ([]T, error) {
	var items []T
	for page != nil {
		items = append(items, page.Items...)
		next, err := page.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		page = next
	}
	return items, nil
}

// parseLinkHeader extracts the relation URLs from an RFC 5988 Link
// header such as:
//
//	<https://api.github.com/repositories/1/issues?page=2>; rel="next",
//	<https://api.github.com/repositories/1/issues?page=5>; rel="last"
//
// Entries that do not parse are skipped rather than failing the whole
// response.
func parseLinkHeader(header string) map[string]*url.URL {
	links := make(map[string]*url.URL)
	for _, part := range strings.Split(header, ",") {
		sections := strings.Split(strings.TrimSpace(part), ";")
		if len(sections) < 2 {
			continue
		}
		target := strings.TrimSpace(sections[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		u, err := url.Parse(target[1 : len(target)-1])
		if err != nil {
			continue
		}
		for _, param := range sections[1:] {
			param = strings.TrimSpace(param)
			if rel, ok := strings.CutPrefix(param, `rel="`); ok {
				links[strings.TrimSuffix(rel, `"`)] = u
			}
		}
	}
	return links
}
