package api

import (
	"context"
	"net/http"
)

// HealthCheck returns the API health status.
func (c *Client) HealthCheck(ctx context.Context) (map[string]any, error) {
	var result map[string]any
	if err := c.Do(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListFrameworks lists the compliance frameworks the server supports.
func (c *Client) ListFrameworks(ctx context.Context) ([]map[string]any, error) {
	var result FrameworksResponse
	if err := c.Do(ctx, http.MethodGet, "/frameworks", nil, &result); err != nil {
		return nil, err
	}
	return result.Frameworks, nil
}

// ListProtocols lists the protocol bridges the server supports.
func (c *Client) ListProtocols(ctx context.Context) ([]map[string]any, error) {
	var result ProtocolsResponse
	if err := c.Do(ctx, http.MethodGet, "/protocols", nil, &result); err != nil {
		return nil, err
	}
	return result.Protocols, nil
}

// ValidateOpenAPI validates an OpenAPI specification.
func (c *Client) ValidateOpenAPI(ctx context.Context, spec map[string]any) (*ValidationResponse, error) {
	req := ValidateOpenAPIRequest{Specification: spec}
	var result ValidationResponse
	if err := c.Do(ctx, http.MethodPost, "/validate/openapi", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateAgentConfig validates an agent configuration for deployment readiness.
func (c *Client) ValidateAgentConfig(ctx context.Context, config map[string]any) (*AgentConfigResponse, error) {
	req := ValidateConfigRequest{Configuration: config}
	var result AgentConfigResponse
	if err := c.Do(ctx, http.MethodPost, "/validate/agent-config", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateCompliance validates a configuration against compliance frameworks.
func (c *Client) ValidateCompliance(ctx context.Context, config map[string]any, frameworks []string) (*ComplianceResponse, error) {
	req := ValidateComplianceRequest{
		Configuration: config,
		Frameworks:    frameworks,
	}
	var result ComplianceResponse
	if err := c.Do(ctx, http.MethodPost, "/validate/compliance", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateProtocols validates protocol bridge configurations. The response
// shape is server-defined, so it is returned as a raw mapping.
func (c *Client) ValidateProtocols(ctx context.Context, config map[string]any, protocols []string) (map[string]any, error) {
	req := ValidateProtocolsRequest{
		Configuration: config,
		Protocols:     protocols,
	}
	var result map[string]any
	if err := c.Do(ctx, http.MethodPost, "/validate/protocols", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// EstimateTokens estimates token usage and cost for a specification.
func (c *Client) EstimateTokens(ctx context.Context, spec map[string]any, opts EstimateOptions) (*EstimationResponse, error) {
	req := EstimateTokensRequest{
		Specification: spec,
		Options:       opts,
	}
	var result EstimationResponse
	if err := c.Do(ctx, http.MethodPost, "/estimate/tokens", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
