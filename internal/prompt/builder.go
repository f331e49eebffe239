package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/extractly-io/extractly/internal/schema"
)

// Rule is one active extraction rule, already scoped to the project.
type Rule struct {
	Name        string
	TargetField string
	Content     string
}

// Knowledge is one knowledge document injected for context.
type Knowledge struct {
	Title       string
	Content     string
	TargetField string
}

// Document is one attached document's extracted text.
type Document struct {
	Name    string
	MIME    string
	Content string
}

// BuildRequest carries everything the extraction prompt is assembled from.
type BuildRequest struct {
	Definition *schema.Definition
	Rules      []Rule
	Knowledge  []Knowledge
	Documents  []Document
	// References holds already-validated field values, used both as context
	// and to resolve @-references in rule text.
	References             map[string]string
	AdditionalInstructions string
}

const (
	maxDocumentChars  = 2000
	maxKnowledgeChars = 1000
)

// BuildExtractionPrompt assembles the targeted extraction prompt: schema
// fields, collections with their identification process, rules, knowledge
// documents, document content and validated reference data.
func BuildExtractionPrompt(req BuildRequest) string {
	var b strings.Builder

	b.WriteString("You are a data extraction specialist. Extract ONLY the specifically targeted fields from the provided documents.\n\n")
	b.WriteString("## EXTRACTION APPROACH:\n")
	b.WriteString("- Focus ONLY on the target fields specified below\n")
	b.WriteString("- Use the knowledge documents for context and validation\n")
	b.WriteString("- Apply extraction rules exactly as specified\n")
	b.WriteString("- For collections: Find identifiers first, then extract properties for each identifier found\n\n")

	if len(req.Definition.Fields) > 0 {
		b.WriteString("## TARGET SCHEMA FIELDS:\n")
		for _, f := range req.Definition.Fields {
			writeFieldLine(&b, f)
		}
		b.WriteString("\n")
	}

	if len(req.Definition.Collections) > 0 {
		b.WriteString("## TARGET COLLECTIONS:\n")
		for _, c := range req.Definition.Collections {
			b.WriteString("### " + c.Name + "\n")
			if c.Description != "" {
				b.WriteString("Description: " + c.Description + "\n")
			}
			b.WriteString("\n**IDENTIFICATION PROCESS:**\n")
			b.WriteString("1. FIRST: Look for identifiers that indicate distinct items in this collection\n")
			b.WriteString("2. THEN: For each identifier found, extract all properties below\n")
			b.WriteString("3. Order collection items as they appear in the documents\n\n")
			b.WriteString("**Properties to extract for each item:**\n")
			for _, p := range c.Properties {
				writeFieldLine(&b, p)
			}
			b.WriteString("\n")
		}
	}

	if len(req.Rules) > 0 {
		b.WriteString("## EXTRACTION RULES:\n")
		for _, r := range req.Rules {
			target := r.TargetField
			if target == "" {
				target = "All Fields"
			}
			content := Substitute(r.Content, req.References)
			b.WriteString("- **" + target + "**: " + content + "\n")
		}
		b.WriteString("\n")
	}

	if len(req.Knowledge) > 0 {
		b.WriteString("## KNOWLEDGE DOCUMENTS:\n")
		for _, k := range req.Knowledge {
			b.WriteString("### " + k.Title + "\n")
			b.WriteString(truncate(k.Content, maxKnowledgeChars) + "\n\n")
		}
	}

	b.WriteString("## DOCUMENT CONTENT TO PROCESS:\n")
	for _, d := range req.Documents {
		b.WriteString("### " + d.Name + " (" + d.MIME + ")\n")
		b.WriteString(truncate(d.Content, maxDocumentChars) + "\n\n")
	}

	if len(req.References) > 0 {
		b.WriteString("## ALREADY VALIDATED REFERENCE DATA:\n")
		b.WriteString("Use this information for context and to avoid duplicating existing data:\n")
		for _, f := range req.Definition.Fields {
			if v, ok := req.References[f.Name]; ok && v != "" {
				b.WriteString("- **" + f.Name + "**: " + v + "\n")
			}
		}
		b.WriteString("\n")
	}

	if req.AdditionalInstructions != "" {
		b.WriteString("## ADDITIONAL INSTRUCTIONS:\n" + req.AdditionalInstructions + "\n\n")
	}

	b.WriteString("## REQUIRED OUTPUT FORMAT:\n")
	b.WriteString("Return ONLY a JSON object with this exact structure:\n")
	b.WriteString("{\n")
	b.WriteString("  \"fields\": {\"<field name>\": {\"value\": <typed value>, \"confidence\": 0-100, \"reasoning\": \"...\"}},\n")
	b.WriteString("  \"collections\": {\"<collection name>\": [{\"<property name>\": {\"value\": <typed value>, \"confidence\": 0-100}}]}\n")
	b.WriteString("}\n")
	b.WriteString("Dates use YYYY-MM-DD. Numbers travel as decimal strings. Never output null; omit optional entries that are not present.\n")

	return b.String()
}

func writeFieldLine(b *strings.Builder, f schema.FieldDef) {
	b.WriteString("- **" + f.Name + "** (ID: " + f.ID.String() + ")\n")
	b.WriteString("  Type: " + f.Type)
	if f.Required {
		b.WriteString(" (required)")
	}
	b.WriteString("\n")
	if f.Description != "" {
		b.WriteString("  Description: " + f.Description + "\n")
	}
	if len(f.Choices) > 0 {
		b.WriteString("  Valid choices: " + strings.Join(f.Choices, ", ") + "\n")
	}
}

// truncate cuts s at n bytes, backing up so the cut never lands inside a
// multi-byte rune.
func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
