package openapiagents

import "github.com/openapi-ai-agents/client-go/internal/api"

// ValidationResult is the outcome of validating an OpenAPI specification or
// agent configuration. Result records are response-scoped value objects and
// are not mutated after construction.
type ValidationResult struct {
	// Valid reports whether the document passed validation.
	Valid bool
	// CertificationLevel is the server-assigned certification tier. For
	// agent configuration validation this carries the readiness level.
	CertificationLevel string
	// Passed lists the checks that succeeded.
	Passed []string
	// Warnings lists non-fatal findings.
	Warnings []string
	// Errors lists the failures that made the document invalid.
	Errors []string
}

// EstimationResult is the outcome of a token usage and cost estimation.
type EstimationResult struct {
	TotalTokens      int
	CompressedTokens int
	// Model is the AI model the cost projections were calculated for.
	Model             string
	DailyCost         float64
	MonthlyCost       float64
	AnnualCost        float64
	AnnualSavings     float64
	SavingsPercentage float64
	// TokenBreakdown details token counts per specification section.
	TokenBreakdown map[string]any
	// Optimizations are server-suggested ways to reduce token consumption.
	Optimizations []map[string]any
}

// ComplianceResult is the outcome of validating a configuration against
// compliance frameworks.
type ComplianceResult struct {
	Valid bool
	// AuthorizationReadiness is the server-assigned authorization tier.
	AuthorizationReadiness string
	// FrameworkResults holds per-framework findings keyed by framework name.
	FrameworkResults map[string]any
	TotalPassed      int
	TotalWarnings    int
	TotalErrors      int
}

func validationResultFromResponse(resp *api.ValidationResponse) *ValidationResult {
	return &ValidationResult{
		Valid:              resp.Valid,
		CertificationLevel: resp.CertificationLevel,
		Passed:             resp.Passed,
		Warnings:           resp.Warnings,
		Errors:             resp.Errors,
	}
}

func validationResultFromAgentConfig(resp *api.AgentConfigResponse) *ValidationResult {
	return &ValidationResult{
		Valid:              resp.Valid,
		CertificationLevel: resp.ReadinessLevel,
		Passed:             resp.Passed,
		Warnings:           resp.Warnings,
		Errors:             resp.Errors,
	}
}

func complianceResultFromResponse(resp *api.ComplianceResponse) *ComplianceResult {
	return &ComplianceResult{
		Valid:                  resp.Valid,
		AuthorizationReadiness: resp.AuthorizationReadiness,
		FrameworkResults:       resp.FrameworkResults,
		TotalPassed:            resp.Summary.TotalPassed,
		TotalWarnings:          resp.Summary.TotalWarnings,
		TotalErrors:            resp.Summary.TotalErrors,
	}
}

func estimationResultFromResponse(resp *api.EstimationResponse) *EstimationResult {
	return &EstimationResult{
		TotalTokens:       resp.TotalTokens,
		CompressedTokens:  resp.CompressedTokens,
		Model:             resp.CostProjections.Model,
		DailyCost:         resp.CostProjections.DailyCost,
		MonthlyCost:       resp.CostProjections.MonthlyCost,
		AnnualCost:        resp.CostProjections.AnnualCost,
		AnnualSavings:     resp.CostProjections.AnnualSavings,
		SavingsPercentage: resp.CostProjections.SavingsPercentage,
		TokenBreakdown:    resp.TokenBreakdown,
		Optimizations:     resp.Optimizations,
	}
}
