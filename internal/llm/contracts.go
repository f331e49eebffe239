package llm

import (
	"context"

	"github.com/extractly-io/extractly/internal/schema"
)

// ExtractedValue is one value returned by the model, with its metadata.
type ExtractedValue struct {
	Value      any    `json:"value"`
	Confidence int    `json:"confidence,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`
}

// ExtractionResult is the normalized shape we want from the model: one entry
// per top-level field, plus one item list per collection.
type ExtractionResult struct {
	Fields      map[string]ExtractedValue              `json:"fields"`
	Collections map[string][]map[string]ExtractedValue `json:"collections,omitempty"`
}

// ExtractRequest carries everything the extractor needs for one call.
type ExtractRequest struct {
	Prompt     string
	Schema     map[string]any // structured-output constraint, also validated locally
	Definition *schema.Definition
}

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (ExtractionResult, []byte /*rawJSON*/, error)
}
