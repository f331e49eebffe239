package llm

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/internal/schema"
)

func lenientDefinition() *schema.Definition {
	return &schema.Definition{
		ProjectID: uuid.New(),
		Fields: []schema.FieldDef{
			{ID: uuid.New(), Name: "invoice_number", Type: "TEXT", Required: true},
			{ID: uuid.New(), Name: "total", Type: "NUMBER"},
			{ID: uuid.New(), Name: "paid", Type: "BOOLEAN"},
			{ID: uuid.New(), Name: "notes", Type: "TEXT"},
		},
		Collections: []schema.CollectionDef{{
			ID:   uuid.New(),
			Name: "line_items",
			Properties: []schema.FieldDef{
				{ID: uuid.New(), Name: "description", Type: "TEXT", Required: true},
				{ID: uuid.New(), Name: "amount", Type: "NUMBER"},
			},
		}},
	}
}

func sanitize(t *testing.T, doc string) (map[string]any, []string) {
	t.Helper()
	out, dropped, err := SanitizeOptionalValues([]byte(doc), lenientDefinition())
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m, dropped
}

func TestSanitizeNormalizesOptionalNumberAndBoolean(t *testing.T) {
	m, dropped := sanitize(t, `{"fields": {
		"invoice_number": {"value": "INV-1"},
		"total": {"value": 129.9, "confidence": 88.0},
		"paid": {"value": "true"}
	}}`)

	assert.Empty(t, dropped)
	fields := m["fields"].(map[string]any)
	assert.Equal(t, "129.9", fields["total"].(map[string]any)["value"])
	assert.Equal(t, float64(88), fields["total"].(map[string]any)["confidence"])
	assert.Equal(t, true, fields["paid"].(map[string]any)["value"])
}

func TestSanitizeDropsUnknownAndBrokenOptionalEntries(t *testing.T) {
	m, dropped := sanitize(t, `{"fields": {
		"invoice_number": {"value": "INV-1"},
		"vendor": {"value": "Acme"},
		"total": {"value": "not a number"},
		"notes": {"value": "  "}
	}}`)

	assert.ElementsMatch(t, []string{"vendor", "total", "notes"}, dropped)
	fields := m["fields"].(map[string]any)
	assert.Contains(t, fields, "invoice_number")
	assert.NotContains(t, fields, "vendor")
	assert.NotContains(t, fields, "total")
	assert.NotContains(t, fields, "notes")
}

func TestSanitizeLeavesRequiredFieldsAlone(t *testing.T) {
	// a broken required value must survive so strict validation reports it
	m, dropped := sanitize(t, `{"fields": {"invoice_number": {"value": 42}}}`)

	assert.Empty(t, dropped)
	fields := m["fields"].(map[string]any)
	assert.Equal(t, float64(42), fields["invoice_number"].(map[string]any)["value"])
}

func TestSanitizeCollections(t *testing.T) {
	m, dropped := sanitize(t, `{
		"fields": {"invoice_number": {"value": "INV-1"}},
		"collections": {
			"line_items": [
				{"description": {"value": "Consulting"}, "amount": {"value": 100}, "vat": {"value": "19"}}
			],
			"ghost_items": [{"x": {"value": "1"}}]
		}
	}`)

	assert.ElementsMatch(t, []string{"line_items.vat", "ghost_items"}, dropped)
	collections := m["collections"].(map[string]any)
	assert.NotContains(t, collections, "ghost_items")
	item := collections["line_items"].([]any)[0].(map[string]any)
	assert.Equal(t, "100", item["amount"].(map[string]any)["value"])
	assert.NotContains(t, item, "vat")
}

func TestSanitizeDropsNullAndMissingValues(t *testing.T) {
	m, dropped := sanitize(t, `{"fields": {
		"invoice_number": {"value": "INV-1"},
		"total": {"value": null},
		"notes": {"confidence": 50}
	}}`)

	assert.ElementsMatch(t, []string{"total", "notes"}, dropped)
	fields := m["fields"].(map[string]any)
	assert.Len(t, fields, 1)
}

func TestSanitizeRejectsInvalidJSON(t *testing.T) {
	_, _, err := SanitizeOptionalValues([]byte(`{"fields":`), lenientDefinition())
	assert.Error(t, err)
}
