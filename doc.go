// Package hubgrab provides a typed client for the GitHub REST API.
//
// The package is deliberately thin: it owns request construction,
// query parameter serialization, pagination, and error classification,
// and leaves retry, backoff, rate limiting and caching to the caller.
//
// # Usage
//
// Create a client and a handler scoped to a repository, then chain
// filters on a list builder and finish with Send:
//
//	client := hubgrab.NewClient(
//		hubgrab.WithToken(os.Getenv("GITHUB_TOKEN")),
//		hubgrab.WithLogger(logger),
//	)
//
//	page, err := issues.NewHandler(client, "rust-lang", "rust").List().
//		State(params.StateOpen).
//		Labels([]string{"help wanted"}).
//		PerPage(50).
//		Send(ctx)
//
// Only the fields explicitly set on a builder are serialized into the
// request; everything else is omitted. A builder is spent once Send
// returns and must not be reused.
//
// # Error Handling
//
// Every failure a request can produce is one of five types, matched
// with errors.As:
//
//   - *RemoteError: the API reported a failure (status + message +
//     documentation link)
//   - *URLError: malformed base URL or path, detected before any
//     network activity
//   - *TransportError: connection, timeout or protocol failure
//   - *DecodeError: the response body did not match the expected
//     shape; the raw payload is preserved for inspection
//   - *OtherError: anything else, wrapping the opaque cause
//
// Causes carry a stack capture from the point of detection; format the
// unwrapped cause with %+v to see it. No error is ever recovered from
// automatically - each one aborts the in-flight operation and is
// returned to the caller unchanged in kind.
package hubgrab
