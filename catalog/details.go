package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ProductDetailsSchema is the JSON schema enforced on the details payload at
// the data-access boundary. Anything inside the rendering core can then
// trust the typed ProductDetails struct.
var ProductDetailsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"pros": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"cons": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"specifications": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"metadata": map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		},
	},
	"additionalProperties": false,
}

var (
	detailsSchemaOnce sync.Once
	detailsSchema     *jsonschema.Schema
	detailsSchemaErr  error
)

func compiledDetailsSchema() (*jsonschema.Schema, error) {
	detailsSchemaOnce.Do(func() {
		encoded, err := json.Marshal(ProductDetailsSchema)
		if err != nil {
			detailsSchemaErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("product_details.json", bytes.NewReader(encoded)); err != nil {
			detailsSchemaErr = err
			return
		}
		detailsSchema, detailsSchemaErr = compiler.Compile("product_details.json")
	})
	return detailsSchema, detailsSchemaErr
}

// ParseDetails validates a raw JSON details document and decodes it into the
// typed struct. It is the single entry point for untyped catalog metadata.
func ParseDetails(slug string, raw []byte) (*ProductDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &DetailsValidationError{Slug: slug, Issues: []string{err.Error()}}
	}

	schema, err := compiledDetailsSchema()
	if err != nil {
		return nil, fmt.Errorf("catalog: compile details schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &DetailsValidationError{Slug: slug, Issues: collectIssues(err)}
	}

	var details ProductDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, &DetailsValidationError{Slug: slug, Issues: []string{err.Error()}}
	}
	return &details, nil
}

func collectIssues(err error) []string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var issues []string
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, node.Message))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(ve)
	return issues
}
