package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic
// map for the project's target schema. We pass this to the model as a
// structured output constraint and also use it locally to validate.
//
// The expected payload shape is:
//
//	{
//	  "fields": {"<field name>": {"value": ..., "confidence": 0-100, "reasoning": "..."}},
//	  "collections": {"<collection name>": [{"<property name>": {"value": ...}, ...}, ...]}
//	}
func BuildJSONSchema(def *Definition) map[string]any {
	fieldProps := map[string]any{}
	var requiredFields []string
	for _, f := range def.Fields {
		fieldProps[f.Name] = extractedValueProp(f)
		if f.Required {
			requiredFields = append(requiredFields, f.Name)
		}
	}
	fieldsSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           fieldProps,
	}
	if len(requiredFields) > 0 {
		fieldsSchema["required"] = requiredFields
	}

	collectionProps := map[string]any{}
	for _, c := range def.Collections {
		itemProps := map[string]any{}
		var requiredProps []string
		for _, p := range c.Properties {
			itemProps[p.Name] = extractedValueProp(p)
			if p.Required {
				requiredProps = append(requiredProps, p.Name)
			}
		}
		itemSchema := map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           itemProps,
		}
		if len(requiredProps) > 0 {
			itemSchema["required"] = requiredProps
		}
		collectionProps[c.Name] = map[string]any{
			"type":  "array",
			"items": itemSchema,
		}
	}

	root := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"fields"},
		"properties": map[string]any{
			"fields": fieldsSchema,
		},
	}
	if len(collectionProps) > 0 {
		root["properties"].(map[string]any)["collections"] = map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           collectionProps,
		}
	}
	return root
}

// extractedValueProp wraps the typed value with the confidence/reasoning
// metadata every extraction carries.
func extractedValueProp(f FieldDef) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"value"},
		"properties": map[string]any{
			"value":      valueProp(f),
			"confidence": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"reasoning":  map[string]any{"type": "string"},
		},
	}
}

func valueProp(f FieldDef) map[string]any {
	switch f.Type {
	case "NUMBER":
		// decimals travel as strings to avoid float drift
		return map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`}
	case "DATE":
		return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
	case "BOOLEAN":
		return map[string]any{"type": "boolean"}
	case "CHOICE":
		if len(f.Choices) > 0 {
			return map[string]any{"type": "string", "enum": f.Choices}
		}
		return map[string]any{"type": "string"}
	default:
		return map[string]any{"type": "string"}
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
