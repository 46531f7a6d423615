package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema constrains the wire shape of a Record: the snake_case field
// names and required fields named in spec.md §6.
func recordSchema() map[string]any {
	decimalProp := map[string]any{"type": "number"}
	optionalString := map[string]any{"type": "string"}

	supplierProps := map[string]any{
		"name":    map[string]any{"type": "string"},
		"address": map[string]any{"type": "object"},
		"contact": map[string]any{"type": "object"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"supplier": map[string]any{
				"type":       "object",
				"properties": supplierProps,
				"required":   []string{"name"},
			},
			"buyer": map[string]any{"type": "object"},
			"transaction": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
				},
				"required": []string{"currency"},
			},
			"parts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"item_name":    optionalString,
						"quantity":     decimalProp,
						"total_amount": decimalProp,
					},
					"required": []string{"item_name", "quantity", "total_amount"},
				},
			},
			"totals": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"grand_total": decimalProp,
				},
				"required": []string{"grand_total"},
			},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"document_type":        map[string]any{"type": "string"},
					"confidence_score":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
					"extraction_timestamp": map[string]any{"type": "string"},
					"language_detected":    map[string]any{"type": "string"},
				},
				"required": []string{"document_type", "extraction_timestamp", "language_detected"},
			},
		},
		"required": []string{"supplier", "transaction", "parts", "totals", "metadata"},
	}
}

// ValidateRecord checks that record marshals to a document matching the
// canonical Record JSON schema.
func ValidateRecord(record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return validateJSONAgainstSchema(recordSchema(), data)
}

func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record-schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record-schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
