package source

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON Schema a remote question payload must satisfy
// before any of it touches the local bank. Type-specific fields are
// optional at the schema level; Question.Validate covers the semantic
// invariants.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"id", "text", "type", "version"},
		"properties": map[string]any{
			"id":      map[string]any{"type": "integer", "minimum": 1},
			"text":    map[string]any{"type": "string", "minLength": 1},
			"type":    map[string]any{"enum": []any{"objective", "subjective"}},
			"version": map[string]any{"type": "integer", "minimum": 0},
			"hints": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"expectedAnswer": map[string]any{"type": "string"},
			"keywords": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"minKeywords": map[string]any{"type": "integer", "minimum": 0},
			"maxLength":   map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks raw JSON against the bank schema.
func validatePayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", bankSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://question-bank.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile question bank schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
