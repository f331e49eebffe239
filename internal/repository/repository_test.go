package repository

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
)

// newTestClient opens an in-memory sqlite database and migrates the schema
// into it. Each test gets its own database.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func quiet() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func createProject(t *testing.T, client *ent.Client, inboxAddress string) *ent.Project {
	t.Helper()
	row, err := NewProjectRepository(client, quiet()).CreateProject(context.Background(), &Project{
		Name:         "Invoices",
		Description:  "supplier invoices",
		InboxAddress: inboxAddress,
	})
	require.NoError(t, err)
	return row
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewSessionRepository(client, quiet())
	project := createProject(t, client, "")

	session, err := repo.Create(ctx, project.ID, "March batch")
	require.NoError(t, err)

	rec, err := repo.Status(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionStatusPending, rec.Status)
	assert.Equal(t, session.ID.String(), rec.SessionID)

	require.NoError(t, repo.MarkProcessing(ctx, session.ID, "extracting documents"))
	require.NoError(t, repo.SetModelName(ctx, session.ID, "gemini-2.5-pro"))
	require.NoError(t, repo.SetProgress(ctx, session.ID, "writing records"))

	rec, err = repo.Status(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionStatusProcessing, rec.Status)
	assert.Equal(t, "writing records", rec.ProgressMessage)

	require.NoError(t, repo.Finish(ctx, session.ID, constants.SessionStatusCompleted, ""))
	rec, err = repo.Status(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionStatusCompleted, rec.Status)

	row, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, row.ModelName)
	assert.Equal(t, "gemini-2.5-pro", *row.ModelName)
	assert.NotNil(t, row.StartedAt)
	assert.NotNil(t, row.FinishedAt)
}

func TestSessionTerminalStatusIsFinal(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewSessionRepository(client, quiet())
	project := createProject(t, client, "")

	session, err := repo.Create(ctx, project.ID, "done batch")
	require.NoError(t, err)
	require.NoError(t, repo.Finish(ctx, session.ID, constants.SessionStatusFailed, "model refused"))

	assert.ErrorIs(t, repo.MarkProcessing(ctx, session.ID, "again"), common.ErrTerminalStatus)
	assert.ErrorIs(t, repo.SetProgress(ctx, session.ID, "again"), common.ErrTerminalStatus)
	assert.ErrorIs(t, repo.Finish(ctx, session.ID, constants.SessionStatusCompleted, ""), common.ErrTerminalStatus)

	rec, err := repo.Status(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.SessionStatusFailed, rec.Status)
	assert.Equal(t, "model refused", rec.ErrorMessage)
}

func TestSessionUpdatesDistinguishMissingFromTerminal(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestClient(t), quiet())

	assert.ErrorIs(t, repo.MarkProcessing(ctx, uuid.New(), "x"), common.ErrNotFound)
	assert.ErrorIs(t, repo.Finish(ctx, uuid.New(), constants.SessionStatusError, "x"), common.ErrNotFound)

	_, err := repo.Status(ctx, uuid.New())
	assert.True(t, ent.IsNotFound(err))
}

func TestFinishRequiresTerminalStatus(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewSessionRepository(client, quiet())
	project := createProject(t, client, "")

	session, err := repo.Create(ctx, project.ID, "batch")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Finish(ctx, session.ID, constants.SessionStatusProcessing, ""), common.ErrInvalidInput)
}

func TestDocumentUpsertByHashDeduplicates(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	sessions := NewSessionRepository(client, quiet())
	docs := NewDocumentRepository(client, quiet())
	project := createProject(t, client, "")

	session, err := sessions.Create(ctx, project.ID, "batch")
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("invoice bytes"))
	doc := &Document{
		FileName:         "invoice.pdf",
		MIMEType:         "application/pdf",
		FileSize:         13,
		ContentHash:      sum[:],
		Source:           "upload",
		ExtractedContent: "Invoice INV-42",
		UploadedAt:       time.Now(),
	}

	first, dedup, err := docs.UpsertByHash(ctx, session.ID, doc)
	require.NoError(t, err)
	assert.False(t, dedup)

	second, dedup, err := docs.UpsertByHash(ctx, session.ID, doc)
	require.NoError(t, err)
	assert.True(t, dedup)
	assert.Equal(t, first.ID, second.ID)

	// the same content in another session is a distinct document
	other, err := sessions.Create(ctx, project.ID, "other batch")
	require.NoError(t, err)
	third, dedup, err := docs.UpsertByHash(ctx, other.ID, doc)
	require.NoError(t, err)
	assert.False(t, dedup)
	assert.NotEqual(t, first.ID, third.ID)

	rows, err := docs.ListBySession(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecordsReplaceForSession(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	sessions := NewSessionRepository(client, quiet())
	records := NewRecordRepository(client, quiet())
	project := createProject(t, client, "")

	session, err := sessions.Create(ctx, project.ID, "batch")
	require.NoError(t, err)

	fieldID := uuid.New()
	collectionID := uuid.New()
	require.NoError(t, records.ReplaceForSession(ctx, session.ID, []Record{
		{FieldID: fieldID, FieldName: "invoice_number", ExtractedValue: "INV-41", Status: string(constants.ValidationStatusValid), ConfidenceScore: 90},
	}))

	require.NoError(t, records.ReplaceForSession(ctx, session.ID, []Record{
		{FieldID: fieldID, FieldName: "invoice_number", ExtractedValue: "INV-42", Status: string(constants.ValidationStatusValid), ConfidenceScore: 92},
		{FieldID: uuid.New(), CollectionID: &collectionID, RecordIndex: 0, FieldName: "amount", ExtractedValue: "100.00", Status: string(constants.ValidationStatusReview), ConfidenceScore: 55},
		{FieldID: uuid.New(), CollectionID: &collectionID, RecordIndex: 1, FieldName: "amount", ExtractedValue: "20.50", Status: string(constants.ValidationStatusValid), ConfidenceScore: 88},
	}))

	rows, err := records.ListBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3, "replace drops the earlier set")
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.ExtractedValue)
	}
	assert.ElementsMatch(t, []string{"INV-42", "100.00", "20.50"}, values)

	byField, err := records.ListByField(ctx, session.ID, fieldID)
	require.NoError(t, err)
	require.Len(t, byField, 1)
	assert.Equal(t, "invoice_number", byField[0].FieldName)
	assert.Nil(t, byField[0].CollectionID)
}

func TestProjectSchemaRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewProjectRepository(client, quiet())
	project := createProject(t, client, "proj-7f@mail.extractly.io")

	found, err := repo.GetByInboxAddress(ctx, "proj-7f@mail.extractly.io")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	_, err = repo.GetByInboxAddress(ctx, "nobody@mail.extractly.io")
	assert.True(t, ent.IsNotFound(err))

	_, err = repo.AddField(ctx, project.ID, &SchemaField{Name: "total", Type: constants.FieldTypeNumber, Position: 1})
	require.NoError(t, err)
	_, err = repo.AddField(ctx, project.ID, &SchemaField{Name: "invoice_number", Type: constants.FieldTypeText, Required: true, Position: 0})
	require.NoError(t, err)

	fields, err := repo.ListFields(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "invoice_number", fields[0].Name, "fields come back in position order")

	coll, err := repo.AddCollection(ctx, project.ID, "line_items", "billed positions")
	require.NoError(t, err)
	_, err = repo.AddProperty(ctx, coll.ID, &SchemaField{Name: "amount", Type: constants.FieldTypeNumber, Position: 0})
	require.NoError(t, err)

	collections, err := repo.ListCollections(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, collections, 1)
	require.Len(t, collections[0].Edges.Properties, 1)
	assert.Equal(t, "amount", collections[0].Edges.Properties[0].Name)
}

func TestRulesAndKnowledge(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewRuleRepository(client, quiet())
	project := createProject(t, client, "")

	rule, err := repo.AddRule(ctx, project.ID, "header wins", "invoice_number", "Prefer the number printed in the header.")
	require.NoError(t, err)
	_, err = repo.AddRule(ctx, project.ID, "ignore notes", "", "Ignore handwritten notes.")
	require.NoError(t, err)

	active, err := repo.ListActiveRules(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	require.NoError(t, repo.SetRuleActive(ctx, rule.ID, false))
	active, err = repo.ListActiveRules(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "ignore notes", active[0].RuleName)

	_, err = repo.AddKnowledge(ctx, project.ID, "Supplier list", "Acme GmbH, Globex Inc.", "")
	require.NoError(t, err)
	docs, err := repo.ListKnowledge(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Supplier list", docs[0].DisplayName)
}
