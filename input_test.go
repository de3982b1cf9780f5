package openapiagents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSpecification_YAML(t *testing.T) {
	path := writeTempFile(t, "spec.yaml", "openapi: 3.1.0\ninfo:\n  title: Test API\n  version: 1.0.0\n")

	doc, err := LoadSpecification(path)
	require.NoError(t, err)

	assert.Equal(t, "3.1.0", doc["openapi"])
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Test API", info["title"])
}

func TestLoadSpecification_YMLExtension(t *testing.T) {
	path := writeTempFile(t, "spec.yml", "openapi: 3.1.0\n")

	doc, err := LoadSpecification(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", doc["openapi"])
}

func TestLoadSpecification_JSON(t *testing.T) {
	path := writeTempFile(t, "spec.json", `{"openapi": "3.1.0", "info": {"title": "Test API"}}`)

	doc, err := LoadSpecification(path)
	require.NoError(t, err)

	assert.Equal(t, "3.1.0", doc["openapi"])
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Test API", info["title"])
}

func TestLoadSpecification_UnknownExtensionParsedAsJSON(t *testing.T) {
	path := writeTempFile(t, "spec.txt", `{"openapi": "3.1.0"}`)

	doc, err := LoadSpecification(path)
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", doc["openapi"])
}

func TestLoadSpecification_MalformedYAML(t *testing.T) {
	path := writeTempFile(t, "bad.yaml", "openapi: [3.1.0")

	_, err := LoadSpecification(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "yaml", parseErr.Format)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadSpecification_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "bad.json", `{"openapi": `)

	_, err := LoadSpecification(path)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "json", parseErr.Format)
}

func TestLoadSpecification_MissingFile(t *testing.T) {
	_, err := LoadSpecification(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInput_StructuredPassthrough(t *testing.T) {
	doc := map[string]any{"openapi": "3.1.0"}
	resolved, err := Structured(doc).resolve()
	require.NoError(t, err)
	assert.Equal(t, doc, resolved)
}

func TestInput_TextYAML(t *testing.T) {
	resolved, err := Text("openapi: 3.1.0\npaths: {}\n").resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", resolved["openapi"])
}

func TestInput_TextJSON(t *testing.T) {
	// JSON is a YAML subset and parses through the same path.
	resolved, err := Text(`{"openapi": "3.1.0"}`).resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", resolved["openapi"])
}

func TestInput_TextMalformed(t *testing.T) {
	_, err := Text("openapi: [3.1.0").resolve()
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
