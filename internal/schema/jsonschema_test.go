package schema

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceDefinition() *Definition {
	return &Definition{
		ProjectID: uuid.New(),
		Fields: []FieldDef{
			{ID: uuid.New(), Name: "invoice_number", Type: "TEXT", Required: true},
			{ID: uuid.New(), Name: "total", Type: "NUMBER"},
			{ID: uuid.New(), Name: "issued_on", Type: "DATE"},
			{ID: uuid.New(), Name: "paid", Type: "BOOLEAN"},
			{ID: uuid.New(), Name: "currency", Type: "CHOICE", Choices: []string{"EUR", "USD"}},
		},
		Collections: []CollectionDef{{
			ID:   uuid.New(),
			Name: "line_items",
			Properties: []FieldDef{
				{ID: uuid.New(), Name: "description", Type: "TEXT", Required: true},
				{ID: uuid.New(), Name: "amount", Type: "NUMBER"},
			},
		}},
	}
}

func TestBuildJSONSchemaShape(t *testing.T) {
	root := BuildJSONSchema(invoiceDefinition())

	assert.Equal(t, "object", root["type"])
	assert.Equal(t, false, root["additionalProperties"])
	assert.Equal(t, []string{"fields"}, root["required"])

	props := root["properties"].(map[string]any)
	fields := props["fields"].(map[string]any)
	assert.Equal(t, []string{"invoice_number"}, fields["required"])

	fieldProps := fields["properties"].(map[string]any)
	total := fieldProps["total"].(map[string]any)["properties"].(map[string]any)["value"].(map[string]any)
	assert.Equal(t, "string", total["type"], "numbers travel as decimal strings")
	assert.NotEmpty(t, total["pattern"])

	currency := fieldProps["currency"].(map[string]any)["properties"].(map[string]any)["value"].(map[string]any)
	assert.Equal(t, []string{"EUR", "USD"}, currency["enum"])

	collections := props["collections"].(map[string]any)["properties"].(map[string]any)
	lineItems := collections["line_items"].(map[string]any)
	assert.Equal(t, "array", lineItems["type"])
	items := lineItems["items"].(map[string]any)
	assert.Equal(t, []string{"description"}, items["required"])
}

func TestBuildJSONSchemaOmitsCollectionsWhenAbsent(t *testing.T) {
	def := &Definition{
		ProjectID: uuid.New(),
		Fields:    []FieldDef{{ID: uuid.New(), Name: "name", Type: "TEXT"}},
	}
	root := BuildJSONSchema(def)
	props := root["properties"].(map[string]any)
	assert.NotContains(t, props, "collections")
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	root := BuildJSONSchema(invoiceDefinition())

	valid := []byte(`{
		"fields": {
			"invoice_number": {"value": "INV-42", "confidence": 95, "reasoning": "printed in the header"},
			"total": {"value": "129.90", "confidence": 88},
			"issued_on": {"value": "2026-01-15"},
			"paid": {"value": true},
			"currency": {"value": "EUR"}
		},
		"collections": {
			"line_items": [
				{"description": {"value": "Consulting"}, "amount": {"value": "100.00"}},
				{"description": {"value": "Travel"}}
			]
		}
	}`)
	require.NoError(t, ValidateJSONAgainstSchema(root, valid))

	cases := map[string]string{
		"missing required field":         `{"fields": {"total": {"value": "1.00"}}}`,
		"number not a decimal":           `{"fields": {"invoice_number": {"value": "INV-1"}, "total": {"value": "abc"}}}`,
		"date wrong format":              `{"fields": {"invoice_number": {"value": "INV-1"}, "issued_on": {"value": "15.01.2026"}}}`,
		"choice outside enum":            `{"fields": {"invoice_number": {"value": "INV-1"}, "currency": {"value": "GBP"}}}`,
		"unknown top-level field":        `{"fields": {"invoice_number": {"value": "INV-1"}, "vendor": {"value": "Acme"}}}`,
		"item missing required property": `{"fields": {"invoice_number": {"value": "INV-1"}}, "collections": {"line_items": [{"amount": {"value": "1.00"}}]}}`,
		"not json at all":                `{"fields":`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateJSONAgainstSchema(root, []byte(payload)))
		})
	}
}

func TestDefinitionLookups(t *testing.T) {
	def := invoiceDefinition()

	f, ok := def.FieldByName("total")
	require.True(t, ok)
	assert.Equal(t, "NUMBER", f.Type)
	_, ok = def.FieldByName("missing")
	assert.False(t, ok)

	c, ok := def.CollectionByName("line_items")
	require.True(t, ok)
	assert.Len(t, c.Properties, 2)
	_, ok = def.CollectionByName("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"invoice_number", "total", "issued_on", "paid", "currency"}, def.FieldNames())
}
