package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/internal/schema"
)

func testDefinition() *schema.Definition {
	return &schema.Definition{
		ProjectID: uuid.New(),
		Fields: []schema.FieldDef{
			{ID: uuid.New(), Name: "invoice_number", Type: "TEXT", Required: true, Description: "The invoice identifier"},
			{ID: uuid.New(), Name: "currency", Type: "CHOICE", Choices: []string{"EUR", "USD"}},
		},
		Collections: []schema.CollectionDef{{
			ID:          uuid.New(),
			Name:        "line_items",
			Description: "Billed positions",
			Properties: []schema.FieldDef{
				{ID: uuid.New(), Name: "amount", Type: "NUMBER", Required: true},
			},
		}},
	}
}

func TestBuildExtractionPromptSections(t *testing.T) {
	out := BuildExtractionPrompt(BuildRequest{
		Definition: testDefinition(),
		Rules: []Rule{
			{Name: "inv", TargetField: "invoice_number", Content: "Prefer the number printed in the header."},
			{Name: "general", Content: "Ignore handwritten notes."},
		},
		Knowledge: []Knowledge{{Title: "Supplier list", Content: "Acme GmbH, Globex Inc."}},
		Documents: []Document{{Name: "invoice.pdf", MIME: "application/pdf", Content: "Invoice No INV-42"}},
	})

	for _, section := range []string{
		"## EXTRACTION APPROACH:",
		"## TARGET SCHEMA FIELDS:",
		"## TARGET COLLECTIONS:",
		"**IDENTIFICATION PROCESS:**",
		"## EXTRACTION RULES:",
		"## KNOWLEDGE DOCUMENTS:",
		"## DOCUMENT CONTENT TO PROCESS:",
		"## REQUIRED OUTPUT FORMAT:",
	} {
		assert.Contains(t, out, section)
	}

	assert.Contains(t, out, "- **invoice_number**")
	assert.Contains(t, out, "Type: TEXT (required)")
	assert.Contains(t, out, "Valid choices: EUR, USD")
	assert.Contains(t, out, "### line_items")
	assert.Contains(t, out, "- **invoice_number**: Prefer the number printed in the header.")
	assert.Contains(t, out, "- **All Fields**: Ignore handwritten notes.")
	assert.Contains(t, out, "### invoice.pdf (application/pdf)")
	assert.Contains(t, out, "Invoice No INV-42")
	// reference block only renders when reference values exist
	assert.NotContains(t, out, "## ALREADY VALIDATED REFERENCE DATA:")
}

func TestBuildExtractionPromptSubstitutesRuleReferences(t *testing.T) {
	out := BuildExtractionPrompt(BuildRequest{
		Definition: testDefinition(),
		Rules:      []Rule{{Name: "cur", TargetField: "currency", Content: "Use the currency of @invoice_number."}},
		References: map[string]string{"invoice_number": "INV-42"},
		Documents:  []Document{{Name: "a.txt", MIME: "text/plain", Content: "x"}},
	})

	assert.Contains(t, out, "Use the currency of INV-42.")
	assert.Contains(t, out, "## ALREADY VALIDATED REFERENCE DATA:")
	assert.Contains(t, out, "- **invoice_number**: INV-42")
}

func TestBuildExtractionPromptTruncatesLongDocuments(t *testing.T) {
	long := strings.Repeat("x", maxDocumentChars+500)
	out := BuildExtractionPrompt(BuildRequest{
		Definition: testDefinition(),
		Documents:  []Document{{Name: "big.txt", MIME: "text/plain", Content: long}},
	})

	require.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("x", maxDocumentChars)+"...")
}

func TestBuildExtractionPromptTruncatesAtRuneBoundary(t *testing.T) {
	long := strings.Repeat("x", maxDocumentChars-1) + strings.Repeat("ü", 300)
	out := BuildExtractionPrompt(BuildRequest{
		Definition: testDefinition(),
		Documents:  []Document{{Name: "big.txt", MIME: "text/plain", Content: long}},
	})

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("x", maxDocumentChars-1)+"...")
	assert.NotContains(t, out, "�")
}

func TestBuildExtractionPromptAdditionalInstructions(t *testing.T) {
	out := BuildExtractionPrompt(BuildRequest{
		Definition:             testDefinition(),
		AdditionalInstructions: "Treat ambiguous dates as DD.MM.YYYY.",
	})
	assert.Contains(t, out, "## ADDITIONAL INSTRUCTIONS:\nTreat ambiguous dates as DD.MM.YYYY.")
}
