// Package httputil fetches remote event lists.
//
// [Fetch] performs a GET with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Other 4xx responses fail immediately. The delay between attempts starts
// at one second and doubles each time; [Client] overrides the defaults:
//
//	body, err := httputil.Fetch(ctx, "https://example.com/team.ics")
//
// Errors carry calgrid error codes (NETWORK_ERROR, NOT_FOUND, TIMEOUT,
// UNAUTHORIZED) so the CLI and the server can report them uniformly.
//
// [Retry] and [RetryableError] are exported for other callers that need
// the same backoff policy around their own operations.
package httputil
