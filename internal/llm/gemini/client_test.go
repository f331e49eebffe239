package gemini

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/internal/llm"
	"github.com/extractly-io/extractly/internal/schema"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func geminiDefinition() *schema.Definition {
	return &schema.Definition{
		ProjectID: uuid.New(),
		Fields: []schema.FieldDef{
			{ID: uuid.New(), Name: "invoice_number", Type: "TEXT", Required: true},
			{ID: uuid.New(), Name: "total", Type: "NUMBER"},
		},
	}
}

func extractRequest() llm.ExtractRequest {
	def := geminiDefinition()
	return llm.ExtractRequest{
		Prompt:     "extract the invoice",
		Schema:     schema.BuildJSONSchema(def),
		Definition: def,
	}
}

// candidateResponse wraps model text in the generateContent response envelope.
func candidateResponse(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": text}},
			},
		}},
	}
}

func testClient(baseURL string, lenient bool) *Client {
	return NewClient(Config{
		BaseURL:         baseURL,
		Model:           "test-model",
		APIKey:          "secret",
		Timeout:         5 * time.Second,
		MaxRetries:      2,
		RatePerSec:      1000,
		LenientOptional: lenient,
	}, testLogger())
}

func TestExtractHappyPath(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		payload := "```json\n{\"fields\": {\"invoice_number\": {\"value\": \"INV-42\", \"confidence\": 95}}}\n```"
		_ = json.NewEncoder(w).Encode(candidateResponse(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, false)
	out, raw, err := c.Extract(context.Background(), extractRequest())
	require.NoError(t, err)

	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)
	gc := gotBody["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gc["responseMimeType"])

	require.Contains(t, out.Fields, "invoice_number")
	assert.Equal(t, "INV-42", out.Fields["invoice_number"].Value)
	assert.Equal(t, 95, out.Fields["invoice_number"].Confidence)
	assert.JSONEq(t, `{"fields": {"invoice_number": {"value": "INV-42", "confidence": 95}}}`, string(raw))
}

func TestExtractLenientSanitizeRecoversOptionalValues(t *testing.T) {
	// total comes back as a json number, which the strict schema rejects
	payload := `{"fields": {"invoice_number": {"value": "INV-1"}, "total": {"value": 129.9}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(payload))
	}))
	defer srv.Close()

	strict := testClient(srv.URL, false)
	_, _, err := strict.Extract(context.Background(), extractRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	lenient := testClient(srv.URL, true)
	out, _, err := lenient.Extract(context.Background(), extractRequest())
	require.NoError(t, err)
	assert.Equal(t, "129.9", out.Fields["total"].Value)
}

func TestExtractFailsWhenRequiredFieldBroken(t *testing.T) {
	// sanitize never touches required fields, so this fails even leniently
	payload := `{"fields": {"invoice_number": {"value": 42}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(candidateResponse(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, true)
	_, _, err := c.Extract(context.Background(), extractRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractRetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		payload := `{"fields": {"invoice_number": {"value": "INV-1"}}}`
		_ = json.NewEncoder(w).Encode(candidateResponse(payload))
	}))
	defer srv.Close()

	c := testClient(srv.URL, false)
	out, _, err := c.Extract(context.Background(), extractRequest())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "INV-1", out.Fields["invoice_number"].Value)
}

func TestExtractGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(srv.URL, false)
	_, _, err := c.Extract(context.Background(), extractRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini status 503")
	assert.Equal(t, int32(2), calls.Load())
}

func TestExtractRejectsEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := testClient(srv.URL, false)
	_, _, err := c.Extract(context.Background(), extractRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestStripFences(t *testing.T) {
	cases := map[string]struct{ in, want string }{
		"json fence":   {"```json\n{\"a\": 1}\n```", `{"a": 1}`},
		"plain fence":  {"```\n{\"a\": 1}\n```", `{"a": 1}`},
		"no fence":     {`{"a": 1}`, `{"a": 1}`},
		"whitespace":   {"  {\"a\": 1}\n", `{"a": 1}`},
		"unterminated": {"```json\n{\"a\": 1}", `{"a": 1}`},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripFences(tc.in))
		})
	}
}
