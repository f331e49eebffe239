package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/llm"
	"github.com/extractly-io/extractly/internal/repository"
)

type finishCall struct {
	status constants.SessionStatus
	errMsg string
}

type sessionsFake struct {
	session        *ent.ExtractionSession
	markErr        error
	progress       []string
	model          string
	finishes       []finishCall
	markProcessing int
}

func (f *sessionsFake) Create(context.Context, uuid.UUID, string) (*ent.ExtractionSession, error) {
	return f.session, nil
}
func (f *sessionsFake) GetByID(context.Context, uuid.UUID) (*ent.ExtractionSession, error) {
	return f.session, nil
}
func (f *sessionsFake) ListByProject(context.Context, uuid.UUID) ([]*ent.ExtractionSession, error) {
	return nil, nil
}
func (f *sessionsFake) Status(context.Context, uuid.UUID) (repository.StatusRecord, error) {
	return repository.StatusRecord{}, nil
}
func (f *sessionsFake) MarkProcessing(_ context.Context, _ uuid.UUID, progress string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markProcessing++
	f.progress = append(f.progress, progress)
	return nil
}
func (f *sessionsFake) SetProgress(_ context.Context, _ uuid.UUID, progress string) error {
	f.progress = append(f.progress, progress)
	return nil
}
func (f *sessionsFake) SetModelName(_ context.Context, _ uuid.UUID, model string) error {
	f.model = model
	return nil
}
func (f *sessionsFake) Finish(_ context.Context, _ uuid.UUID, status constants.SessionStatus, errMsg string) error {
	f.finishes = append(f.finishes, finishCall{status: status, errMsg: errMsg})
	return nil
}

type projectsFake struct {
	fields      []*ent.SchemaField
	collections []*ent.Collection
}

func (f *projectsFake) CreateProject(context.Context, *repository.Project) (*ent.Project, error) {
	return nil, nil
}
func (f *projectsFake) GetByID(context.Context, uuid.UUID) (*ent.Project, error) { return nil, nil }
func (f *projectsFake) GetByInboxAddress(context.Context, string) (*ent.Project, error) {
	return nil, nil
}
func (f *projectsFake) ListProjects(context.Context) ([]*ent.Project, error) { return nil, nil }
func (f *projectsFake) Exists(context.Context, uuid.UUID) (bool, error)      { return true, nil }
func (f *projectsFake) AddField(context.Context, uuid.UUID, *repository.SchemaField) (*ent.SchemaField, error) {
	return nil, nil
}
func (f *projectsFake) ListFields(context.Context, uuid.UUID) ([]*ent.SchemaField, error) {
	return f.fields, nil
}
func (f *projectsFake) AddCollection(context.Context, uuid.UUID, string, string) (*ent.Collection, error) {
	return nil, nil
}
func (f *projectsFake) AddProperty(context.Context, uuid.UUID, *repository.SchemaField) (*ent.CollectionProperty, error) {
	return nil, nil
}
func (f *projectsFake) ListCollections(context.Context, uuid.UUID) ([]*ent.Collection, error) {
	return f.collections, nil
}

type documentsFake struct {
	docs []*ent.SessionDocument
}

func (f *documentsFake) GetByID(context.Context, uuid.UUID) (*ent.SessionDocument, error) {
	return nil, nil
}
func (f *documentsFake) GetBySessionAndHash(context.Context, uuid.UUID, []byte) (*ent.SessionDocument, error) {
	return nil, nil
}
func (f *documentsFake) Create(context.Context, uuid.UUID, *repository.Document) (*ent.SessionDocument, error) {
	return nil, nil
}
func (f *documentsFake) UpsertByHash(context.Context, uuid.UUID, *repository.Document) (*ent.SessionDocument, bool, error) {
	return nil, false, nil
}
func (f *documentsFake) ListBySession(context.Context, uuid.UUID) ([]*ent.SessionDocument, error) {
	return f.docs, nil
}

type recordsFake struct {
	prior    []*ent.ValidationRecord
	replaced []repository.Record
	err      error
}

func (f *recordsFake) ReplaceForSession(_ context.Context, _ uuid.UUID, recs []repository.Record) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = recs
	return nil
}
func (f *recordsFake) ListBySession(context.Context, uuid.UUID) ([]*ent.ValidationRecord, error) {
	return f.prior, nil
}
func (f *recordsFake) ListByField(context.Context, uuid.UUID, uuid.UUID) ([]*ent.ValidationRecord, error) {
	return nil, nil
}

type rulesFake struct {
	rules     []*ent.ExtractionRule
	knowledge []*ent.KnowledgeDocument
}

func (f *rulesFake) AddRule(context.Context, uuid.UUID, string, string, string) (*ent.ExtractionRule, error) {
	return nil, nil
}
func (f *rulesFake) ListActiveRules(context.Context, uuid.UUID) ([]*ent.ExtractionRule, error) {
	return f.rules, nil
}
func (f *rulesFake) SetRuleActive(context.Context, uuid.UUID, bool) error { return nil }
func (f *rulesFake) AddKnowledge(context.Context, uuid.UUID, string, string, string) (*ent.KnowledgeDocument, error) {
	return nil, nil
}
func (f *rulesFake) ListKnowledge(context.Context, uuid.UUID) ([]*ent.KnowledgeDocument, error) {
	return f.knowledge, nil
}

type extractorFake struct {
	result llm.ExtractionResult
	err    error
	prompt string
}

func (f *extractorFake) Extract(_ context.Context, req llm.ExtractRequest) (llm.ExtractionResult, []byte, error) {
	f.prompt = req.Prompt
	if f.err != nil {
		return llm.ExtractionResult{}, nil, f.err
	}
	return f.result, nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newFixture() (uuid.UUID, *sessionsFake, *projectsFake, *documentsFake, uuid.UUID, uuid.UUID) {
	sessionID := uuid.New()
	projectID := uuid.New()
	fieldID := uuid.New()
	sessions := &sessionsFake{session: &ent.ExtractionSession{
		ID:        sessionID,
		ProjectID: projectID,
		Status:    string(constants.SessionStatusPending),
	}}
	projects := &projectsFake{fields: []*ent.SchemaField{
		{ID: fieldID, Name: "invoice_number", FieldType: constants.FieldTypeText, Required: true},
	}}
	documents := &documentsFake{docs: []*ent.SessionDocument{
		{ID: uuid.New(), SessionID: sessionID, FileName: "invoice.pdf", MimeType: "application/pdf", ExtractedContent: "Invoice No INV-42"},
	}}
	return sessionID, sessions, projects, documents, projectID, fieldID
}

func TestProcessSessionHappyPath(t *testing.T) {
	sessionID, sessions, projects, documents, _, fieldID := newFixture()
	records := &recordsFake{}
	extractor := &extractorFake{result: llm.ExtractionResult{
		Fields: map[string]llm.ExtractedValue{
			"invoice_number": {Value: "INV-42", Confidence: 92, Reasoning: "header line"},
		},
	}}

	p := NewProcessor(sessions, projects, documents, records, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	written, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	require.Len(t, sessions.finishes, 1)
	assert.Equal(t, constants.SessionStatusCompleted, sessions.finishes[0].status)
	assert.Equal(t, "gemini-2.5-pro", sessions.model)

	require.Len(t, records.replaced, 1)
	rec := records.replaced[0]
	assert.Equal(t, fieldID, rec.FieldID)
	assert.Equal(t, "INV-42", rec.ExtractedValue)
	assert.Equal(t, string(constants.ValidationStatusValid), rec.Status)
	assert.Equal(t, 92, rec.ConfidenceScore)
	assert.Contains(t, extractor.prompt, "invoice_number")
	assert.Contains(t, extractor.prompt, "Invoice No INV-42")
}

func TestProcessSessionLowConfidenceGoesToReview(t *testing.T) {
	sessionID, sessions, projects, documents, _, _ := newFixture()
	records := &recordsFake{}
	extractor := &extractorFake{result: llm.ExtractionResult{
		Fields: map[string]llm.ExtractedValue{
			"invoice_number": {Value: "INV-42", Confidence: constants.MinConfidenceScore - 1},
		},
	}}

	p := NewProcessor(sessions, projects, documents, records, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, records.replaced, 1)
	assert.Equal(t, string(constants.ValidationStatusReview), records.replaced[0].Status)
}

func TestProcessSessionCollectionsGetIndexedRecords(t *testing.T) {
	sessionID, sessions, projects, documents, _, _ := newFixture()
	collID := uuid.New()
	propID := uuid.New()
	projects.collections = []*ent.Collection{{
		ID:   collID,
		Name: "line_items",
		Edges: ent.CollectionEdges{Properties: []*ent.CollectionProperty{
			{ID: propID, CollectionID: collID, Name: "amount", PropertyType: constants.FieldTypeNumber},
		}},
	}}

	records := &recordsFake{}
	extractor := &extractorFake{result: llm.ExtractionResult{
		Fields: map[string]llm.ExtractedValue{},
		Collections: map[string][]map[string]llm.ExtractedValue{
			"line_items": {
				{"amount": {Value: "12.50", Confidence: 90}},
				{"amount": {Value: "3.99", Confidence: 88}},
			},
		},
	}}

	p := NewProcessor(sessions, projects, documents, records, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, records.replaced, 2)
	for i, rec := range records.replaced {
		assert.Equal(t, propID, rec.FieldID)
		require.NotNil(t, rec.CollectionID)
		assert.Equal(t, collID, *rec.CollectionID)
		assert.Equal(t, i, rec.RecordIndex)
	}
}

func TestProcessSessionDropsUnknownNames(t *testing.T) {
	sessionID, sessions, projects, documents, _, _ := newFixture()
	records := &recordsFake{}
	extractor := &extractorFake{result: llm.ExtractionResult{
		Fields: map[string]llm.ExtractedValue{
			"invoice_number": {Value: "INV-42", Confidence: 90},
			"hallucinated":   {Value: "nope", Confidence: 99},
		},
	}}

	p := NewProcessor(sessions, projects, documents, records, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, records.replaced, 1)
	assert.Equal(t, "invoice_number", records.replaced[0].FieldName)
}

func TestProcessSessionExtractorFailureMarksFailed(t *testing.T) {
	sessionID, sessions, projects, documents, _, _ := newFixture()
	extractor := &extractorFake{err: errors.New("model unavailable")}

	p := NewProcessor(sessions, projects, documents, &recordsFake{}, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, sessions.finishes, 1)
	assert.Equal(t, constants.SessionStatusFailed, sessions.finishes[0].status)
	assert.Contains(t, sessions.finishes[0].errMsg, "model unavailable")
}

func TestProcessSessionNoDocumentsFails(t *testing.T) {
	sessionID, sessions, projects, _, _, _ := newFixture()
	documents := &documentsFake{}

	p := NewProcessor(sessions, projects, documents, &recordsFake{}, &rulesFake{}, &extractorFake{}, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, sessions.finishes, 1)
	assert.Equal(t, constants.SessionStatusFailed, sessions.finishes[0].status)
	assert.Contains(t, sessions.finishes[0].errMsg, "no documents")
}

func TestProcessSessionTerminalRedeliveryIsNoop(t *testing.T) {
	sessionID, sessions, projects, documents, _, _ := newFixture()
	sessions.markErr = common.ErrTerminalStatus

	p := NewProcessor(sessions, projects, documents, &recordsFake{}, &rulesFake{}, &extractorFake{}, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, sessions.finishes)
}

func TestProcessSessionVerifiedValuesFeedReferences(t *testing.T) {
	sessionID, sessions, projects, documents, _, fieldID := newFixture()
	records := &recordsFake{prior: []*ent.ValidationRecord{{
		ID:               uuid.New(),
		SessionID:        sessionID,
		FieldID:          fieldID,
		FieldName:        "invoice_number",
		ExtractedValue:   "INV-41",
		ValidationStatus: string(constants.ValidationStatusVerified),
	}}}
	extractor := &extractorFake{result: llm.ExtractionResult{
		Fields: map[string]llm.ExtractedValue{
			"invoice_number": {Value: "INV-41", Confidence: 95},
		},
	}}

	p := NewProcessor(sessions, projects, documents, records, &rulesFake{}, extractor, "gemini-2.5-pro", quietLogger())
	_, err := p.ProcessSession(context.Background(), sessionID)
	require.NoError(t, err)

	assert.True(t, strings.Contains(extractor.prompt, "ALREADY VALIDATED"), "verified values must appear as reference data")
	assert.Contains(t, extractor.prompt, "INV-41")
}

func TestStringifyValue(t *testing.T) {
	assert.Equal(t, "", stringifyValue(nil))
	assert.Equal(t, "plain", stringifyValue("plain"))
	assert.Equal(t, "12.5", stringifyValue(12.5))
	assert.Equal(t, "true", stringifyValue(true))
}
