package hubgrab

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	token      string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
}

// WithBaseURL points the client at a different API root, such as a
// GitHub Enterprise instance or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithToken sets the bearer token sent with every request. Without it
// the client talks to the API anonymously.
func WithToken(token string) Option {
	return func(o *clientOptions) {
		o.token = token
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// WithTimeout has no effect when this option is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request-level debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
