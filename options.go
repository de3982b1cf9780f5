package openapiagents

import (
	"net/http"
	"time"
)

// Defaults established at construction. All session configuration is
// immutable once the client is built.
const (
	// DefaultBaseURL is the production validation API endpoint.
	DefaultBaseURL = "https://api.openapi-ai-agents.org/v1"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the retry count for transient failures.
	DefaultMaxRetries = 3
)

// Estimation defaults matching the server's pricing model.
const (
	DefaultModel            = "gpt-4-turbo"
	DefaultRequestsPerDay   = 1000
	DefaultCompressionRatio = 0.7
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retriesSet bool
	retryOn    []int
	retryDelay time.Duration
}

// estimateConfig holds options for token estimation.
type estimateConfig struct {
	model            string
	requestsPerDay   int
	compressionRatio float64
}

// Option configures the client.
type Option func(*clientConfig)

// EstimateOption configures a token estimation call.
type EstimateOption func(*estimateConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the number of retries for API calls. Zero disables
// retries.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
		c.retriesSet = true
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithRetryDelay sets the base delay between retry attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithModel sets the AI model used for pricing calculations.
// Default: gpt-4-turbo
func WithModel(model string) EstimateOption {
	return func(c *estimateConfig) {
		c.model = model
	}
}

// WithRequestsPerDay sets the daily request volume for cost projections.
// Default: 1000
func WithRequestsPerDay(requests int) EstimateOption {
	return func(c *estimateConfig) {
		c.requestsPerDay = requests
	}
}

// WithCompressionRatio sets the token compression ratio (0 to 1).
// Default: 0.7
func WithCompressionRatio(ratio float64) EstimateOption {
	return func(c *estimateConfig) {
		c.compressionRatio = ratio
	}
}
