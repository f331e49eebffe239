package llm

import "github.com/extractly-io/extractly/internal/schema"

// ValidateAgainstSchema checks model output against the project's compiled
// JSON Schema.
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	return schema.ValidateJSONAgainstSchema(schemaMap, data)
}
