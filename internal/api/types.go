package api

// Request and response bodies for the validation API. The JSON field names
// are the wire contract and must match the server's schema byte-for-byte.

// ValidateOpenAPIRequest is the POST /validate/openapi request.
type ValidateOpenAPIRequest struct {
	Specification map[string]any `json:"specification"`
}

// ValidateConfigRequest is the POST /validate/agent-config request.
type ValidateConfigRequest struct {
	Configuration map[string]any `json:"configuration"`
}

// ValidateComplianceRequest is the POST /validate/compliance request.
// Frameworks is omitted when empty; the server then checks all of them.
type ValidateComplianceRequest struct {
	Configuration map[string]any `json:"configuration"`
	Frameworks    []string       `json:"frameworks,omitempty"`
}

// ValidateProtocolsRequest is the POST /validate/protocols request.
type ValidateProtocolsRequest struct {
	Configuration map[string]any `json:"configuration"`
	Protocols     []string       `json:"protocols,omitempty"`
}

// EstimateOptions are the nested options of the POST /estimate/tokens request.
type EstimateOptions struct {
	Model            string  `json:"model"`
	RequestsPerDay   int     `json:"requestsPerDay"`
	CompressionRatio float64 `json:"compressionRatio"`
}

// EstimateTokensRequest is the POST /estimate/tokens request.
type EstimateTokensRequest struct {
	Specification map[string]any  `json:"specification"`
	Options       EstimateOptions `json:"options"`
}

// ValidationResponse is the POST /validate/openapi response.
type ValidationResponse struct {
	Valid              bool     `json:"valid"`
	CertificationLevel string   `json:"certification_level"`
	Passed             []string `json:"passed"`
	Warnings           []string `json:"warnings"`
	Errors             []string `json:"errors"`
}

// AgentConfigResponse is the POST /validate/agent-config response. The tier
// comes back as readiness_level rather than certification_level.
type AgentConfigResponse struct {
	Valid          bool     `json:"valid"`
	ReadinessLevel string   `json:"readiness_level"`
	Passed         []string `json:"passed"`
	Warnings       []string `json:"warnings"`
	Errors         []string `json:"errors"`
}

// ComplianceSummary is the nested summary of a compliance response.
type ComplianceSummary struct {
	TotalPassed   int `json:"total_passed"`
	TotalWarnings int `json:"total_warnings"`
	TotalErrors   int `json:"total_errors"`
}

// ComplianceResponse is the POST /validate/compliance response.
type ComplianceResponse struct {
	Valid                  bool              `json:"valid"`
	AuthorizationReadiness string            `json:"authorization_readiness"`
	FrameworkResults       map[string]any    `json:"framework_results"`
	Summary                ComplianceSummary `json:"summary"`
}

// CostProjections is the nested cost section of an estimation response.
type CostProjections struct {
	Model             string  `json:"model"`
	DailyCost         float64 `json:"daily_cost"`
	MonthlyCost       float64 `json:"monthly_cost"`
	AnnualCost        float64 `json:"annual_cost"`
	AnnualSavings     float64 `json:"annual_savings"`
	SavingsPercentage float64 `json:"savings_percentage"`
}

// EstimationResponse is the POST /estimate/tokens response.
type EstimationResponse struct {
	TotalTokens      int              `json:"total_tokens"`
	CompressedTokens int              `json:"compressed_tokens"`
	CostProjections  CostProjections  `json:"cost_projections"`
	TokenBreakdown   map[string]any   `json:"token_breakdown"`
	Optimizations    []map[string]any `json:"optimizations"`
}

// FrameworksResponse is the GET /frameworks response.
type FrameworksResponse struct {
	Frameworks []map[string]any `json:"frameworks"`
}

// ProtocolsResponse is the GET /protocols response.
type ProtocolsResponse struct {
	Protocols []map[string]any `json:"protocols"`
}
