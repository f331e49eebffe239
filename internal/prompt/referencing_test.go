package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencesFindsBothForms(t *testing.T) {
	refs := References("Use @invoice_number and @{Total Amount} to cross-check @invoice_number.")
	assert.Equal(t, []string{"invoice_number", "Total Amount"}, refs)
}

func TestReferencesIgnoresPlainText(t *testing.T) {
	assert.Empty(t, References("no references in this sentence at all"))
	assert.Empty(t, References("@ alone and @{   } do not count"))
	assert.Empty(t, References(""))
}

func TestValidateReferencesReportsUnknown(t *testing.T) {
	unknown := ValidateReferences("@known plus @missing and @{Also Missing}", []string{"known"})
	assert.Equal(t, []string{"missing", "Also Missing"}, unknown)

	assert.Empty(t, ValidateReferences("@known", []string{"known"}))
}

func TestSubstituteReplacesValues(t *testing.T) {
	out := Substitute("Invoice @invoice_number totals @{Total Amount}.", map[string]string{
		"invoice_number": "INV-42",
		"Total Amount":   "129.00",
	})
	assert.Equal(t, "Invoice INV-42 totals 129.00.", out)
}

func TestSubstituteMarksUnresolved(t *testing.T) {
	out := Substitute("Check @vendor_name first.", map[string]string{})
	assert.Equal(t, "Check [unresolved: vendor_name] first.", out)

	// empty values count as unresolved too
	out = Substitute("@vendor_name", map[string]string{"vendor_name": ""})
	assert.Equal(t, "[unresolved: vendor_name]", out)
}
