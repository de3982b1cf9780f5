// Package api provides HTTP client functionality for communicating with the
// OpenAPI AI Agents validation API. It handles authentication,
// request/response serialization, and automatic retry with exponential
// backoff for transient failures.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require an API key, sent via the X-API-Key header on every request.
//
// # Retry Behavior
//
// Requests are retried with exponential backoff and jitter. By default, up to
// 3 retries are made for these HTTP status codes:
//
//   - 429 Too Many Requests
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// POST requests are retried too; validation and estimation calls have no
// server-side effects beyond the response. Configure retry behavior with
// [Config.MaxRetries], [Config.RetryDelay], and [Config.RetryOn].
//
// # Error Handling
//
// Non-2xx responses are returned as [*APIError]. Sentinel errors support
// errors.Is checks:
//
//	if errors.Is(err, api.ErrRateLimited) {
//	    // back off
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use after construction.
package api
