package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var ErrDocumentInvalid = errors.New("layout: configuration document is invalid")

// DocumentSchema is the JSON schema enforced when a layout document enters
// the system (admin save, niche import). Resolution itself stays permissive;
// only the boundary validates.
var DocumentSchema = map[string]any{
	"type":     "object",
	"required": []string{"zones"},
	"properties": map[string]any{
		"zones": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []string{"id", "sections"},
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"sections": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []string{"id"},
							"properties": map[string]any{
								"id":              map[string]any{"type": "string", "minLength": 1},
								"condition_field": map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	documentSchemaOnce sync.Once
	documentSchema     *jsonschema.Schema
	documentSchemaErr  error
)

func compiledDocumentSchema() (*jsonschema.Schema, error) {
	documentSchemaOnce.Do(func() {
		encoded, err := json.Marshal(DocumentSchema)
		if err != nil {
			documentSchemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("layout.json", bytes.NewReader(encoded)); err != nil {
			documentSchemaErr = err
			return
		}
		documentSchema, documentSchemaErr = compiler.Compile("layout.json")
	})
	return documentSchema, documentSchemaErr
}

// ParseDocument validates a raw layout JSON document and decodes it. Empty
// input resolves to nil, meaning "use the default layout".
func ParseDocument(raw []byte) (*Config, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	schema, err := compiledDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("layout: compile document schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentInvalid, err)
	}
	return &cfg, nil
}
