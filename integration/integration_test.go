//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	openapiagents "github.com/openapi-ai-agents/client-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	apiKey = os.Getenv("OPENAPI_AI_AGENTS_KEY")
	baseURL = os.Getenv("OPENAPI_AI_AGENTS_URL")

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: OPENAPI_AI_AGENTS_KEY not set\n")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func newClient(t *testing.T) *openapiagents.Client {
	t.Helper()

	opts := []openapiagents.Option{
		openapiagents.WithTimeout(30 * time.Second),
	}
	if baseURL != "" {
		opts = append(opts, openapiagents.WithBaseURL(baseURL))
	}

	client, err := openapiagents.New(apiKey, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)
	return ctx
}

func TestHealthCheck(t *testing.T) {
	client := newClient(t)

	status, err := client.HealthCheck(testContext(t))
	if err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
	if len(status) == 0 {
		t.Error("HealthCheck() returned empty status")
	}
}

func TestListFrameworks(t *testing.T) {
	client := newClient(t)

	frameworks, err := client.ListFrameworks(testContext(t))
	if err != nil {
		t.Fatalf("ListFrameworks() error = %v", err)
	}
	if len(frameworks) == 0 {
		t.Error("ListFrameworks() returned no frameworks")
	}
}

func TestListProtocols(t *testing.T) {
	client := newClient(t)

	protocols, err := client.ListProtocols(testContext(t))
	if err != nil {
		t.Fatalf("ListProtocols() error = %v", err)
	}
	if len(protocols) == 0 {
		t.Error("ListProtocols() returned no protocols")
	}
}

func TestValidateOpenAPI(t *testing.T) {
	client := newClient(t)

	spec := map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":   "Integration Test API",
			"version": "1.0.0",
		},
		"paths": map[string]any{},
	}

	result, err := client.ValidateOpenAPI(testContext(t), openapiagents.Structured(spec))
	if err != nil {
		t.Fatalf("ValidateOpenAPI() error = %v", err)
	}
	if result.CertificationLevel == "" && result.Valid {
		t.Error("valid result has no certification level")
	}
}

func TestValidateAndEstimate(t *testing.T) {
	client := newClient(t)

	spec := map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":   "Integration Test API",
			"version": "1.0.0",
		},
		"paths": map[string]any{},
	}

	validation, estimation, err := client.ValidateAndEstimate(testContext(t),
		openapiagents.Structured(spec))
	if err != nil {
		t.Fatalf("ValidateAndEstimate() error = %v", err)
	}
	if validation == nil || estimation == nil {
		t.Fatal("ValidateAndEstimate() returned nil result")
	}
	if estimation.TotalTokens <= 0 {
		t.Errorf("TotalTokens = %d, want > 0", estimation.TotalTokens)
	}
}
