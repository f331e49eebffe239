package inbox

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/ingest"
	"github.com/extractly-io/extractly/internal/repository"
)

type providerFake struct {
	messages    []Message
	attachments map[string][]byte
	acked       []string
	fetchErr    error
	listErr     error
}

func (f *providerFake) CreateInbox(context.Context, string) (string, error) {
	return "", errors.New("not used")
}

func (f *providerFake) ListMessages(context.Context, string) ([]Message, error) {
	return f.messages, f.listErr
}

func (f *providerFake) FetchAttachment(_ context.Context, _, attachmentID string) (Attachment, error) {
	if f.fetchErr != nil {
		return Attachment{}, f.fetchErr
	}
	data, ok := f.attachments[attachmentID]
	if !ok {
		return Attachment{}, errors.New("no such attachment")
	}
	for _, msg := range f.messages {
		for _, meta := range msg.Attachments {
			if meta.ID == attachmentID {
				return Attachment{AttachmentMeta: meta, Content: data}, nil
			}
		}
	}
	return Attachment{}, errors.New("no such attachment")
}

func (f *providerFake) AckMessage(_ context.Context, messageID string) error {
	f.acked = append(f.acked, messageID)
	return nil
}

type projectsFake struct {
	repository.ProjectRepository
	project *ent.Project
}

func (f *projectsFake) GetByInboxAddress(_ context.Context, address string) (*ent.Project, error) {
	if f.project == nil || f.project.InboxAddress == nil || *f.project.InboxAddress != address {
		return nil, &ent.NotFoundError{}
	}
	return f.project, nil
}

type intakeSessionsFake struct {
	repository.SessionRepository
	created  []*ent.ExtractionSession
	finishes []struct {
		id     uuid.UUID
		status constants.SessionStatus
		msg    string
	}
}

func (f *intakeSessionsFake) Create(_ context.Context, projectID uuid.UUID, name string) (*ent.ExtractionSession, error) {
	row := &ent.ExtractionSession{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      name,
		Status:    string(constants.SessionStatusPending),
	}
	f.created = append(f.created, row)
	return row, nil
}

func (f *intakeSessionsFake) Finish(_ context.Context, id uuid.UUID, status constants.SessionStatus, msg string) error {
	f.finishes = append(f.finishes, struct {
		id     uuid.UUID
		status constants.SessionStatus
		msg    string
	}{id, status, msg})
	return nil
}

type ingestorFake struct {
	uploads []ingest.Upload
	err     error
}

func (f *ingestorFake) IngestDocument(_ context.Context, _ uuid.UUID, up ingest.Upload) (ingest.Result, error) {
	if f.err != nil {
		return ingest.Result{}, f.err
	}
	f.uploads = append(f.uploads, up)
	return ingest.Result{FileName: up.FileName}, nil
}

type publisherFake struct {
	published []uuid.UUID
	err       error
}

func (f *publisherFake) PublishSession(_ context.Context, sessionID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, sessionID)
	return nil
}

const testInbox = "proj-7f@mail.extractly.io"

func testProject() *ent.Project {
	addr := testInbox
	return &ent.Project{ID: uuid.New(), Name: "Invoices", InboxAddress: &addr}
}

func testMessage() Message {
	return Message{
		ID:           "msg-1",
		InboxAddress: testInbox,
		From:         "vendor@acme.test",
		Subject:      "Invoice INV-42",
		ReceivedAt:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Attachments: []AttachmentMeta{
			{ID: "att-1", Filename: "invoice.pdf", ContentType: "application/pdf", Size: 12},
			{ID: "att-2", Filename: "logo.png", ContentType: "image/png", Size: 5},
		},
	}
}

func newIntake(provider *providerFake, projects *projectsFake, sessions *intakeSessionsFake, ingestor *ingestorFake, publisher *publisherFake) *IntakeService {
	return NewIntakeService(provider, projects, sessions, ingestor, publisher, slog.New(slog.DiscardHandler))
}

func TestHandleMessageIngestsAttachmentsAndPublishes(t *testing.T) {
	provider := &providerFake{
		messages:    []Message{testMessage()},
		attachments: map[string][]byte{"att-1": []byte("%PDF-1.7"), "att-2": []byte("png")},
	}
	projects := &projectsFake{project: testProject()}
	sessions := &intakeSessionsFake{}
	ingestor := &ingestorFake{}
	publisher := &publisherFake{}

	res, err := newIntake(provider, projects, sessions, ingestor, publisher).
		HandleMessage(context.Background(), "msg-1", testInbox)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Ingested)
	assert.Equal(t, 1, res.Skipped, "png attachment fails the MIME gate")

	require.Len(t, sessions.created, 1)
	assert.Equal(t, "Invoice INV-42", sessions.created[0].Name)
	assert.Equal(t, res.SessionID, sessions.created[0].ID)

	require.Len(t, ingestor.uploads, 1)
	assert.Equal(t, "invoice.pdf", ingestor.uploads[0].FileName)
	assert.Equal(t, "email", ingestor.uploads[0].Source)

	assert.Equal(t, []string{"msg-1"}, provider.acked)
	assert.Equal(t, []uuid.UUID{res.SessionID}, publisher.published)
	assert.Empty(t, sessions.finishes)
}

func TestHandleMessageNamesSessionFromSenderWhenSubjectEmpty(t *testing.T) {
	msg := testMessage()
	msg.Subject = ""
	provider := &providerFake{messages: []Message{msg}, attachments: map[string][]byte{"att-1": []byte("x")}}
	sessions := &intakeSessionsFake{}

	_, err := newIntake(provider, &projectsFake{project: testProject()}, sessions, &ingestorFake{}, &publisherFake{}).
		HandleMessage(context.Background(), "msg-1", testInbox)
	require.NoError(t, err)

	require.Len(t, sessions.created, 1)
	assert.Contains(t, sessions.created[0].Name, "Email from vendor@acme.test")
}

func TestHandleMessageWithoutProviderErrors(t *testing.T) {
	svc := NewIntakeService(nil, &projectsFake{project: testProject()}, &intakeSessionsFake{},
		&ingestorFake{}, &publisherFake{}, slog.New(slog.DiscardHandler))

	_, err := svc.HandleMessage(context.Background(), "msg-1", testInbox)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestHandleMessageUnknownInboxAcksAndDrops(t *testing.T) {
	provider := &providerFake{}
	sessions := &intakeSessionsFake{}

	res, err := newIntake(provider, &projectsFake{}, sessions, &ingestorFake{}, &publisherFake{}).
		HandleMessage(context.Background(), "msg-1", "nobody@mail.extractly.io")
	require.NoError(t, err)

	assert.Zero(t, res.SessionID)
	assert.Equal(t, []string{"msg-1"}, provider.acked)
	assert.Empty(t, sessions.created)
}

func TestHandleMessageGoneMessageIsNoOp(t *testing.T) {
	provider := &providerFake{messages: nil}
	sessions := &intakeSessionsFake{}

	res, err := newIntake(provider, &projectsFake{project: testProject()}, sessions, &ingestorFake{}, &publisherFake{}).
		HandleMessage(context.Background(), "msg-1", testInbox)
	require.NoError(t, err)

	assert.Zero(t, res.SessionID)
	assert.Empty(t, sessions.created)
	assert.Empty(t, provider.acked)
}

func TestHandleMessageFailsSessionWithoutUsableAttachments(t *testing.T) {
	provider := &providerFake{
		messages:    []Message{testMessage()},
		attachments: map[string][]byte{},
		fetchErr:    errors.New("provider hiccup"),
	}
	sessions := &intakeSessionsFake{}
	publisher := &publisherFake{}

	res, err := newIntake(provider, &projectsFake{project: testProject()}, sessions, &ingestorFake{}, publisher).
		HandleMessage(context.Background(), "msg-1", testInbox)
	require.NoError(t, err)

	assert.Zero(t, res.Ingested)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, sessions.finishes, 1)
	assert.Equal(t, constants.SessionStatusFailed, sessions.finishes[0].status)
	assert.Equal(t, "no usable attachments in email", sessions.finishes[0].msg)
	assert.Empty(t, publisher.published)
	assert.Equal(t, []string{"msg-1"}, provider.acked, "unusable mail is still acked")
}

func TestHandleMessagePublishFailureSurfaces(t *testing.T) {
	provider := &providerFake{
		messages:    []Message{testMessage()},
		attachments: map[string][]byte{"att-1": []byte("x")},
	}
	publisher := &publisherFake{err: errors.New("nats down")}

	_, err := newIntake(provider, &projectsFake{project: testProject()}, &intakeSessionsFake{}, &ingestorFake{}, publisher).
		HandleMessage(context.Background(), "msg-1", testInbox)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enqueue session")
}
