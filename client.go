package hubgrab

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "hubgrab"
	defaultTimeout   = 30 * time.Second

	mediaType = "application/vnd.github.v3+json"
)

// Client dispatches requests against the GitHub REST API. It is safe
// for concurrent use; each request is an independent exchange.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new API client. With no options it talks
// anonymously to api.github.com.
func NewClient(opts ...Option) *Client {
	options := clientOptions{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		token:      options.token,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     options.logger,
	}
}

// absoluteURL resolves a relative path against the configured base.
// A base or path that does not parse into a usable absolute URL fails
// here, before anything is sent.
func (c *Client) absoluteURL(path string) (*url.URL, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, newURLError(c.baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, newURLError(c.baseURL, errMissingHost)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, newURLError(path, err)
	}
	return base.ResolveReference(ref), nil
}

// requestURL builds the full request target, encoding the query object
// into the query string when one is given.
func (c *Client) requestURL(path string, query any) (*url.URL, error) {
	u, err := c.absoluteURL(path)
	if err != nil {
		return nil, err
	}
	if query != nil {
		values, err := queryValues(query)
		if err != nil {
			return nil, newOtherError(err)
		}
		if len(values) > 0 {
			u.RawQuery = values.Encode()
		}
	}
	return u, nil
}

// send issues a single request and hands back the raw response. Only
// transport-level outcomes are classified here; the status code is the
// caller's business.
func (c *Client) send(ctx context.Context, method string, u *url.URL, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, newOtherError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, newOtherError(err)
	}

	req.Header.Set("Accept", mediaType)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", u.String()).
		Msg("Dispatching API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(err)
	}
	return resp, nil
}

// do sends the request and reads the body, turning a failure status
// into a RemoteError. On success the raw body is returned for the
// caller to decode.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body any) (*http.Response, []byte, error) {
	resp, err := c.send(ctx, method, u, body)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, newTransportError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var remote GitHubError
		if err := json.Unmarshal(raw, &remote); err != nil {
			return nil, nil, newDecodeError(raw, err)
		}
		return nil, nil, newRemoteError(resp.StatusCode, remote)
	}

	return resp, raw, nil
}

// Exists issues a GET for path and reports the outcome purely from the
// status code: 204 No Content means yes, anything else means no. The
// body is never decoded. Used for endpoints like the pull request
// merge check.
func (c *Client) Exists(ctx context.Context, path string) (bool, error) {
	u, err := c.absoluteURL(path)
	if err != nil {
		return false, err
	}
	resp, err := c.send(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusNoContent, nil
}

// Get issues a GET for path with the given query object and decodes
// the JSON response into T. A nil query sends no parameters.
func Get[T any](ctx context.Context, c *Client, path string, query any) (*T, error) {
	u, err := c.requestURL(path, query)
	if err != nil {
		return nil, err
	}
	_, raw, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Post issues a POST for path with body serialized as JSON and decodes
// the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	u, err := c.absoluteURL(path)
	if err != nil {
		return nil, err
	}
	_, raw, err := c.do(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// decode unmarshals a response body, preserving the payload on failure.
func decode[T any](raw []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, newDecodeError(raw, err)
	}
	return &out, nil
}
