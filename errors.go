package openapiagents

import (
	"errors"
	"fmt"

	"github.com/openapi-ai-agents/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrInvalidAPIKey is returned when the server rejects the API key (401).
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrRateLimited is returned when the rate limit is exceeded (429) and
	// retries are exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error from the validation API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case 401:
		return "invalid API key"
	case 429:
		return "rate limit exceeded, wait before retrying"
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrInvalidAPIKey
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a transport-level failure after retries exhausted.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError represents malformed YAML or JSON input.
type ParseError struct {
	Format string // "yaml" or "json"
	Path   string // file path, if the input came from a file
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s %s: %v", e.Format, e.Path, e.Err)
	}
	return fmt.Sprintf("parse %s input: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors so that
// errors.Is() and errors.As() checks work with the package's types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
