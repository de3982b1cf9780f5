// Package tui renders validation and estimation results for the terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	openapiagents "github.com/openapi-ai-agents/client-go"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success)
	failStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(warning)
	tierStyle   = lipgloss.NewStyle().Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	levelColors = map[string]lipgloss.Color{
		"platinum": lipgloss.Color("#E8E6E3"),
		"gold":     warning,
		"silver":   dim,
		"bronze":   lipgloss.Color("#FB923C"),
	}
)

func levelColor(level string) lipgloss.Color {
	if c, ok := levelColors[strings.ToLower(level)]; ok {
		return c
	}
	return accent
}

// RenderValidation renders a validation result.
func RenderValidation(result *openapiagents.ValidationResult) string {
	var b strings.Builder

	if result.Valid {
		level := tierStyle.Foreground(levelColor(result.CertificationLevel)).
			Render(strings.ToUpper(result.CertificationLevel))
		b.WriteString(boxStyle.Render(
			passStyle.Render("Validation PASSED") + "  " +
				dimStyle.Render("certification:") + " " + level))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  passed checks: %d", len(result.Passed))))
		for i, w := range result.Warnings {
			if i == 3 {
				b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  ... and %d more warning(s)", len(result.Warnings)-i)))
				break
			}
			b.WriteString("\n" + warnStyle.Render("  warning: "+w))
		}
		return b.String()
	}

	b.WriteString(failStyle.Render("Validation FAILED"))
	for _, e := range result.Errors {
		b.WriteString("\n" + failStyle.Render("  ✗ ") + e)
	}
	return b.String()
}

// RenderEstimation renders token usage and cost projections.
func RenderEstimation(result *openapiagents.EstimationResult) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Token estimation") +
		dimStyle.Render(" ("+result.Model+")"))
	b.WriteString(fmt.Sprintf("\n  total tokens:      %d", result.TotalTokens))
	b.WriteString(fmt.Sprintf("\n  compressed tokens: %d", result.CompressedTokens))
	b.WriteString(fmt.Sprintf("\n  daily cost:        $%.2f", result.DailyCost))
	b.WriteString(fmt.Sprintf("\n  monthly cost:      $%.2f", result.MonthlyCost))
	b.WriteString(fmt.Sprintf("\n  annual cost:       $%.2f", result.AnnualCost))
	b.WriteString("\n  " + passStyle.Render(
		fmt.Sprintf("annual savings:    $%.2f (%.1f%%)", result.AnnualSavings, result.SavingsPercentage)))

	if len(result.Optimizations) > 0 {
		b.WriteString("\n" + warnStyle.Render(
			fmt.Sprintf("  %d optimization recommendation(s) available", len(result.Optimizations))))
		for i, opt := range result.Optimizations {
			if i == 2 {
				break
			}
			kind, _ := opt["type"].(string)
			savings, _ := opt["potential_savings"].(string)
			if kind != "" {
				b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("    - %s: %s savings", kind, savings)))
			}
		}
	}
	return b.String()
}

// RenderCompliance renders a compliance validation result.
func RenderCompliance(result *openapiagents.ComplianceResult) string {
	var b strings.Builder

	status := failStyle.Render("NON-COMPLIANT")
	if result.Valid {
		status = passStyle.Render("COMPLIANT")
	}
	b.WriteString(boxStyle.Render(status + "  " +
		dimStyle.Render("authorization readiness:") + " " +
		tierStyle.Render(result.AuthorizationReadiness)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s  %s",
		passStyle.Render(fmt.Sprintf("passed: %d", result.TotalPassed)),
		warnStyle.Render(fmt.Sprintf("warnings: %d", result.TotalWarnings)),
		failStyle.Render(fmt.Sprintf("errors: %d", result.TotalErrors))))

	for name := range result.FrameworkResults {
		b.WriteString("\n" + dimStyle.Render("  framework: "+name))
	}
	return b.String()
}
