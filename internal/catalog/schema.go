package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON schema every word catalog document must satisfy.
// Authored catalogs are data, not code, so they get the same schema gate the
// rest of the system applies to external JSON.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"words": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"tier": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
				},
				"required":             []any{"id", "prompt", "answer", "tier"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"words"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog checks raw JSON against catalogSchema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		compiledSchema, compileErr = compileCatalogSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile catalog schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compileCatalogSchema compiles the in-memory schema definition.
// The jsonschema library expects a parsed JSON value, so the definition is
// round-tripped through encoding/json first.
func compileCatalogSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://word-catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
}
