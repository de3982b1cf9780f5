package openapiagents

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input is a specification or configuration document passed to a validation
// or estimation call. It holds either a structured mapping or a YAML/JSON
// text blob; text is parsed into a mapping before the request is sent.
type Input struct {
	doc  map[string]any
	text string
}

// Structured wraps an already-parsed document.
func Structured(doc map[string]any) Input {
	return Input{doc: doc}
}

// Text wraps a YAML or JSON text blob. JSON is a subset of YAML, so both
// parse through the same path.
func Text(s string) Input {
	return Input{text: s}
}

// resolve returns the canonical mapping form of the input.
func (in Input) resolve() (map[string]any, error) {
	if in.doc != nil {
		return in.doc, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(in.text), &doc); err != nil {
		return nil, &ParseError{Format: "yaml", Err: err}
	}
	return doc, nil
}

// LoadSpecification loads an OpenAPI specification or agent configuration
// from a YAML or JSON file. Files ending in .yaml or .yml are parsed as
// YAML; anything else is parsed as JSON.
func LoadSpecification(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specification: %w", err)
	}

	var doc map[string]any
	if hasYAMLExtension(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Format: "yaml", Path: path, Err: err}
		}
		return doc, nil
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Format: "json", Path: path, Err: err}
	}
	return doc, nil
}

func hasYAMLExtension(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
