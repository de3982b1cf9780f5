package openapiagents

import (
	"context"

	"github.com/openapi-ai-agents/client-go/internal/api"
)

// Client is the OpenAPI AI Agents validation API client. Every operation is
// a single stateless request/response exchange; the only shared state across
// calls is the immutable session configuration established at construction
// and the transport's connection pool.
type Client struct {
	apiClient *api.Client
}

// New creates a new client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
	}
	if cfg.retriesSet {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}
	if cfg.retryDelay > 0 {
		apiOpts = append(apiOpts, api.WithRetryDelay(cfg.retryDelay))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// HealthCheck checks API health status and returns the raw status document.
func (c *Client) HealthCheck(ctx context.Context) (map[string]any, error) {
	result, err := c.apiClient.HealthCheck(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ListFrameworks lists the compliance frameworks the server supports.
func (c *Client) ListFrameworks(ctx context.Context) ([]map[string]any, error) {
	frameworks, err := c.apiClient.ListFrameworks(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return frameworks, nil
}

// ListProtocols lists the protocol bridges the server supports.
func (c *Client) ListProtocols(ctx context.Context) ([]map[string]any, error) {
	protocols, err := c.apiClient.ListProtocols(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return protocols, nil
}

// ValidateOpenAPI validates an OpenAPI specification against the AI Agents
// Standard and returns the result with its certification level.
func (c *Client) ValidateOpenAPI(ctx context.Context, specification Input) (*ValidationResult, error) {
	spec, err := specification.resolve()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ValidateOpenAPI(ctx, spec)
	if err != nil {
		return nil, wrapError(err)
	}
	return validationResultFromResponse(resp), nil
}

// ValidateAgentConfig validates an agent configuration for deployment
// readiness. The result's CertificationLevel carries the readiness level.
func (c *Client) ValidateAgentConfig(ctx context.Context, configuration Input) (*ValidationResult, error) {
	config, err := configuration.resolve()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ValidateAgentConfig(ctx, config)
	if err != nil {
		return nil, wrapError(err)
	}
	return validationResultFromAgentConfig(resp), nil
}

// ValidateCompliance validates a configuration against government and AI
// compliance frameworks. With no frameworks given, the server checks all of
// them; an empty list and an absent list are equivalent.
func (c *Client) ValidateCompliance(ctx context.Context, configuration Input, frameworks ...string) (*ComplianceResult, error) {
	config, err := configuration.resolve()
	if err != nil {
		return nil, err
	}

	resp, err := c.apiClient.ValidateCompliance(ctx, config, frameworks)
	if err != nil {
		return nil, wrapError(err)
	}
	return complianceResultFromResponse(resp), nil
}

// ValidateProtocols validates protocol bridge configurations. The result is
// the server's raw response document.
func (c *Client) ValidateProtocols(ctx context.Context, configuration Input, protocols ...string) (map[string]any, error) {
	config, err := configuration.resolve()
	if err != nil {
		return nil, err
	}

	result, err := c.apiClient.ValidateProtocols(ctx, config, protocols)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// EstimateTokens estimates token usage and costs for a specification, with
// optimization recommendations.
func (c *Client) EstimateTokens(ctx context.Context, specification Input, opts ...EstimateOption) (*EstimationResult, error) {
	spec, err := specification.resolve()
	if err != nil {
		return nil, err
	}

	cfg := &estimateConfig{
		model:            DefaultModel,
		requestsPerDay:   DefaultRequestsPerDay,
		compressionRatio: DefaultCompressionRatio,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	resp, err := c.apiClient.EstimateTokens(ctx, spec, api.EstimateOptions{
		Model:            cfg.model,
		RequestsPerDay:   cfg.requestsPerDay,
		CompressionRatio: cfg.compressionRatio,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return estimationResultFromResponse(resp), nil
}

// ValidateAndEstimate validates a specification and estimates its token
// costs in one call. The two requests are independent round trips with no
// atomicity guarantee; if either fails, the whole call fails.
func (c *Client) ValidateAndEstimate(ctx context.Context, specification Input, opts ...EstimateOption) (*ValidationResult, *EstimationResult, error) {
	validation, err := c.ValidateOpenAPI(ctx, specification)
	if err != nil {
		return nil, nil, err
	}

	estimation, err := c.EstimateTokens(ctx, specification, opts...)
	if err != nil {
		return nil, nil, err
	}

	return validation, estimation, nil
}
