package export

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/repository"
)

type sessionsFake struct{ session *ent.ExtractionSession }

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
func (f *sessionsFake) MarkProcessing(context.Context, uuid.UUID, string) error { return nil }
func (f *sessionsFake) SetProgress(context.Context, uuid.UUID, string) error    { return nil }
func (f *sessionsFake) SetModelName(context.Context, uuid.UUID, string) error   { return nil }
func (f *sessionsFake) Finish(context.Context, uuid.UUID, constants.SessionStatus, string) error {
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

type recordsFake struct{ rows []*ent.ValidationRecord }

func (f *recordsFake) ReplaceForSession(context.Context, uuid.UUID, []repository.Record) error {
	return nil
}
func (f *recordsFake) ListBySession(context.Context, uuid.UUID) ([]*ent.ValidationRecord, error) {
	return f.rows, nil
}
func (f *recordsFake) ListByField(context.Context, uuid.UUID, uuid.UUID) ([]*ent.ValidationRecord, error) {
	return nil, nil
}

func fixture() (*Service, uuid.UUID) {
	sessionID := uuid.New()
	projectID := uuid.New()
	fieldID := uuid.New()
	collID := uuid.New()
	propAmount := uuid.New()
	propDesc := uuid.New()

	sessions := &sessionsFake{session: &ent.ExtractionSession{
		ID:        sessionID,
		ProjectID: projectID,
		Status:    string(constants.SessionStatusCompleted),
	}}
	projects := &projectsFake{
		fields: []*ent.SchemaField{
			{ID: fieldID, Name: "invoice_number", FieldType: constants.FieldTypeText},
		},
		collections: []*ent.Collection{{
			ID:   collID,
			Name: "line_items",
			Edges: ent.CollectionEdges{Properties: []*ent.CollectionProperty{
				{ID: propAmount, CollectionID: collID, Name: "amount", PropertyType: constants.FieldTypeNumber},
				{ID: propDesc, CollectionID: collID, Name: "description", PropertyType: constants.FieldTypeText},
			}},
		}},
	}
	records := &recordsFake{rows: []*ent.ValidationRecord{
		{ID: uuid.New(), SessionID: sessionID, FieldID: fieldID, FieldName: "invoice_number",
			ExtractedValue: "INV-42", ValidationStatus: "valid", ConfidenceScore: 92},
		{ID: uuid.New(), SessionID: sessionID, FieldID: propAmount, CollectionID: &collID, RecordIndex: 0,
			FieldName: "amount", ExtractedValue: "12.50", ValidationStatus: "valid", ConfidenceScore: 90},
		{ID: uuid.New(), SessionID: sessionID, FieldID: propDesc, CollectionID: &collID, RecordIndex: 0,
			FieldName: "description", ExtractedValue: "Widget", ValidationStatus: "valid", ConfidenceScore: 88},
		{ID: uuid.New(), SessionID: sessionID, FieldID: propAmount, CollectionID: &collID, RecordIndex: 1,
			FieldName: "amount", ExtractedValue: "3.99", ValidationStatus: "review_required", ConfidenceScore: 60},
	}}

	logger := slog.New(slog.DiscardHandler)
	return NewService(sessions, projects, records, logger), sessionID
}

func TestExportSessionXLSX(t *testing.T) {
	svc, sessionID := fixture()

	out, err := svc.ExportSessionXLSX(context.Background(), sessionID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"Fields", "line_items"}, wb.GetSheetList())

	rows, err := wb.GetRows("Fields")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Field", "Value", "Status", "Confidence", "Reasoning"}, rows[0][:5])
	assert.Equal(t, "invoice_number", rows[1][0])
	assert.Equal(t, "INV-42", rows[1][1])

	items, err := wb.GetRows("line_items")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"amount", "description"}, items[0][:2])
	assert.Equal(t, "12.50", items[1][0])
	assert.Equal(t, "Widget", items[1][1])
	assert.Equal(t, "3.99", items[2][0])
}

func TestSheetNameAvoidsCollisions(t *testing.T) {
	used := map[string]bool{"Fields": true}

	assert.Equal(t, "Fields (2)", sheetName("Fields", used))
	assert.Equal(t, "line_items", sheetName("line_items", used))
	assert.Equal(t, "line_items (2)", sheetName("line_items", used))

	long := strings.Repeat("a", 40)
	first := sheetName(long, used)
	second := sheetName(long, used)
	assert.Equal(t, strings.Repeat("a", 31), first)
	assert.Equal(t, strings.Repeat("a", 27)+" (2)", second)
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, len(second), 31)
}

func TestSheetNameKeepsRunesIntact(t *testing.T) {
	used := map[string]bool{}
	name := sheetName(strings.Repeat("ö", 20), used)
	assert.True(t, utf8.ValidString(name))
	assert.LessOrEqual(t, len(name), 31)
	assert.Equal(t, strings.Repeat("ö", 15), name)
}

func TestExportSessionXLSXDisambiguatesCollectionSheets(t *testing.T) {
	svc, sessionID := fixture()
	projects := svc.projects.(*projectsFake)
	projects.collections = append(projects.collections, &ent.Collection{
		ID:    uuid.New(),
		Name:  "Fields",
		Edges: ent.CollectionEdges{Properties: []*ent.CollectionProperty{}},
	})

	out, err := svc.ExportSessionXLSX(context.Background(), sessionID)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t, []string{"Fields", "line_items", "Fields (2)"}, wb.GetSheetList())
}

func TestExportSessionCSV(t *testing.T) {
	svc, sessionID := fixture()

	out, err := svc.ExportSessionCSV(context.Background(), sessionID)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	require.Len(t, lines, 5)
	assert.Equal(t, "collection,record_index,field,value,status,confidence,reasoning", string(bytes.TrimSpace(lines[0])))
	// top-level field sorts before collection rows (empty collection name first)
	assert.Contains(t, string(lines[1]), "invoice_number,INV-42,valid,92")
	assert.Contains(t, string(lines[2]), "line_items,0,amount,12.50")
	assert.Contains(t, string(lines[4]), "line_items,1,amount,3.99")
}
