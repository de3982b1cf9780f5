package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidationServer serves canned validate and estimate responses.
func newValidationServer(t *testing.T, valid bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/validate/openapi":
			json.NewEncoder(w).Encode(map[string]any{
				"valid":               valid,
				"certification_level": "gold",
				"passed":              []string{"structure"},
				"warnings":            []string{},
				"errors":              []string{"missing info.title"},
			})
		case "/estimate/tokens":
			json.NewEncoder(w).Encode(map[string]any{
				"total_tokens":      100,
				"compressed_tokens": 70,
				"cost_projections": map[string]any{
					"model": "gpt-4-turbo", "daily_cost": 1.0,
				},
			})
		case "/health":
			json.NewEncoder(w).Encode(map[string]any{"status": "healthy"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func writeSpecFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	content := "openapi: 3.1.0\ninfo:\n  title: Test\n  version: 1.0.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_ValidatesAndEstimates(t *testing.T) {
	server := newValidationServer(t, true)
	defer server.Close()

	out, err := runCommand(t,
		writeSpecFile(t), "test-key", "--base-url", server.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "Validating specification")
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "GOLD")
	assert.Contains(t, out, "Estimating token costs")
}

func TestRoot_ValidationFailureExitsNonZero(t *testing.T) {
	server := newValidationServer(t, false)
	defer server.Close()

	out, err := runCommand(t,
		writeSpecFile(t), "test-key", "--base-url", server.URL)
	require.Error(t, err)

	assert.Contains(t, out, "FAILED")
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRoot_MissingAPIKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := runCommand(t, writeSpecFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAPIKey)
}

func TestRoot_APIKeyFromEnvironment(t *testing.T) {
	server := newValidationServer(t, true)
	defer server.Close()

	t.Setenv(EnvAPIKey, "env-key")

	_, err := runCommand(t, writeSpecFile(t), "--base-url", server.URL)
	require.NoError(t, err)
}

func TestRoot_MissingSpecFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "missing.yaml"), "test-key")
	require.Error(t, err)
}

func TestHealthCommand(t *testing.T) {
	server := newValidationServer(t, true)
	defer server.Close()

	out, err := runCommand(t, "health", "--api-key", "test-key", "--base-url", server.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "healthy")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "agents-validate")
}
