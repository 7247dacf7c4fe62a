package hubgrab

import (
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// errMissingHost rejects base URLs that parse but name no host, such
// as a bare path or an empty string.
var errMissingHost = errors.New("base url must be absolute")

// GitHubError is the error schema GitHub returns in the body of a
// failed request.
type GitHubError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
}

// Error implements the error interface
func (e *GitHubError) Error() string {
	return fmt.Sprintf("%s (documentation: %s)", e.Message, e.DocumentationURL)
}

// RemoteError indicates the API itself reported a failure. It carries
// the HTTP status and the decoded GitHub error body.
type RemoteError struct {
	StatusCode int
	Response   GitHubError
	err        error
}

func newRemoteError(statusCode int, response GitHubError) *RemoteError {
	return &RemoteError{
		StatusCode: statusCode,
		Response:   response,
		err:        pkgerrors.WithStack(&response),
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Response.Error())
}

// Unwrap returns the underlying *GitHubError with its captured stack.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// URLError indicates a malformed base URL or request path. It is
// returned before any network activity takes place.
type URLError struct {
	URL string
	Err error
}

func newURLError(raw string, err error) *URLError {
	return &URLError{URL: raw, Err: pkgerrors.WithStack(err)}
}

// Error implements the error interface
func (e *URLError) Error() string {
	return fmt.Sprintf("invalid request url %q: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parse error
func (e *URLError) Unwrap() error {
	return e.Err
}

// TransportError indicates a network or protocol level failure:
// connection refused, timeout, TLS handshake, a body cut short.
type TransportError struct {
	Err error
}

func newTransportError(err error) *TransportError {
	return &TransportError{Err: pkgerrors.WithStack(err)}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a response body did not match the expected
// shape. The offending payload is kept verbatim in Body so an
// unexpected response can be inspected after the fact.
type DecodeError struct {
	Body json.RawMessage
	Err  error
}

func newDecodeError(body []byte, err error) *DecodeError {
	raw := make(json.RawMessage, len(body))
	copy(raw, body)
	return &DecodeError{Body: raw, Err: pkgerrors.WithStack(err)}
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %v\npayload: %s", e.Err, e.Body)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OtherError wraps failures that fit none of the other categories,
// such as a request body that cannot be serialized.
type OtherError struct {
	Err error
}

func newOtherError(err error) *OtherError {
	return &OtherError{Err: pkgerrors.WithStack(err)}
}

// Error implements the error interface
func (e *OtherError) Error() string {
	return fmt.Sprintf("hubgrab: %v", e.Err)
}

// Unwrap returns the wrapped cause
func (e *OtherError) Unwrap() error {
	return e.Err
}
