package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/inbox"
	"github.com/extractly-io/extractly/internal/ingest"
	"github.com/extractly-io/extractly/internal/observability/metrics"
	"github.com/extractly-io/extractly/internal/repository"
)

type sessionsFake struct {
	status    repository.StatusRecord
	statusErr error
}

func (f *sessionsFake) Create(context.Context, uuid.UUID, string) (*ent.ExtractionSession, error) {
	return nil, nil
}
func (f *sessionsFake) GetByID(context.Context, uuid.UUID) (*ent.ExtractionSession, error) {
	return nil, nil
}
func (f *sessionsFake) ListByProject(context.Context, uuid.UUID) ([]*ent.ExtractionSession, error) {
	return nil, nil
}
func (f *sessionsFake) Status(context.Context, uuid.UUID) (repository.StatusRecord, error) {
	if f.statusErr != nil {
		return repository.StatusRecord{}, f.statusErr
	}
	return f.status, nil
}
func (f *sessionsFake) MarkProcessing(context.Context, uuid.UUID, string) error { return nil }
func (f *sessionsFake) SetProgress(context.Context, uuid.UUID, string) error    { return nil }
func (f *sessionsFake) SetModelName(context.Context, uuid.UUID, string) error   { return nil }
func (f *sessionsFake) Finish(context.Context, uuid.UUID, constants.SessionStatus, string) error {
	return nil
}

type ingestorFake struct {
	res  ingest.Result
	err  error
	last ingest.Upload
}

func (f *ingestorFake) IngestDocument(_ context.Context, _ uuid.UUID, up ingest.Upload) (ingest.Result, error) {
	f.last = up
	if f.err != nil {
		return ingest.Result{}, f.err
	}
	return f.res, nil
}

type exporterFake struct {
	xlsx []byte
	csv  []byte
	err  error
}

func (f *exporterFake) ExportSessionXLSX(context.Context, uuid.UUID) ([]byte, error) {
	return f.xlsx, f.err
}
func (f *exporterFake) ExportSessionCSV(context.Context, uuid.UUID) ([]byte, error) {
	return f.csv, f.err
}

type intakeFake struct {
	res     inbox.IntakeResult
	err     error
	lastMsg string
}

func (f *intakeFake) HandleMessage(_ context.Context, messageID, _ string) (inbox.IntakeResult, error) {
	f.lastMsg = messageID
	if f.err != nil {
		return inbox.IntakeResult{}, f.err
	}
	return f.res, nil
}

const secret = "whsec"

func newTestServer(sessions *sessionsFake, ingestor *ingestorFake, exporter *exporterFake, intake *intakeFake) http.Handler {
	logger := slog.New(slog.DiscardHandler)
	srv := NewServer(sessions, ingestor, exporter, intake, secret,
		func() error { return nil }, metrics.NewHTTPServerMetrics("test"), logger)
	return srv.Router()
}

func TestSessionStatusEndpoint(t *testing.T) {
	sessionID := uuid.New()
	sessions := &sessionsFake{status: repository.StatusRecord{
		SessionID:       sessionID.String(),
		Status:          constants.SessionStatusProcessing,
		ProgressMessage: "extracting fields",
		UpdatedAt:       time.Now(),
	}}
	router := newTestServer(sessions, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+sessionID.String()+"/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got repository.StatusRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, constants.SessionStatusProcessing, got.Status)
	assert.Equal(t, "extracting fields", got.ProgressMessage)
}

func TestSessionStatusNotFound(t *testing.T) {
	sessions := &sessionsFake{statusErr: common.ErrNotFound}
	router := newTestServer(sessions, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.NewString()+"/status", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionStatusRejectsBadID(t *testing.T) {
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/not-a-uuid/status", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartBody(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	ingestor := &ingestorFake{res: ingest.Result{DocumentID: uuid.NewString(), FileName: "doc.pdf"}}
	router := newTestServer(&sessionsFake{}, ingestor, &exporterFake{}, &intakeFake{})

	body, contentType := multipartBody(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+uuid.NewString()+"/documents", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "doc.pdf", ingestor.last.FileName)
	assert.Equal(t, "application/pdf", ingestor.last.MIMEType)
	assert.Equal(t, "upload", ingestor.last.Source)
}

func TestUploadDocumentTerminalSessionConflicts(t *testing.T) {
	ingestor := &ingestorFake{err: common.ErrTerminalStatus}
	router := newTestServer(&sessionsFake{}, ingestor, &exporterFake{}, &intakeFake{})

	body, contentType := multipartBody(t, "doc.pdf", "application/pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+uuid.NewString()+"/documents", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUploadDocumentRejectedInput(t *testing.T) {
	ingestor := &ingestorFake{err: common.NewAppError("INGEST_INPUT", "unsupported document type", common.ErrInvalidInput)}
	router := newTestServer(&sessionsFake{}, ingestor, &exporterFake{}, &intakeFake{})

	body, contentType := multipartBody(t, "raw.bin", "application/octet-stream", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+uuid.NewString()+"/documents", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExportSessionCSVEndpoint(t *testing.T) {
	exporter := &exporterFake{csv: []byte("field,value\n")}
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, exporter, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.NewString()+"/export?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "field,value\n", rec.Body.String())
}

func TestExportSessionBadFormat(t *testing.T) {
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/"+uuid.NewString()+"/export?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func webhookRequest(t *testing.T, payload inbox.WebhookPayload, sign bool) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/inbound-email", bytes.NewReader(body))
	if sign {
		req.Header.Set("X-Inbox-Signature", inbox.SignBody(secret, body))
	}
	return req
}

func TestInboundEmailWebhook(t *testing.T) {
	intake := &intakeFake{res: inbox.IntakeResult{SessionID: uuid.New(), Ingested: 2, Skipped: 1}}
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, intake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, webhookRequest(t, inbox.WebhookPayload{
		MessageID:    "msg-1",
		InboxAddress: "proj-abc@in.extractly.io",
		From:         "sender@example.com",
	}, true))

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "msg-1", intake.lastMsg)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["ingested"])
}

func TestInboundEmailRejectsBadSignature(t *testing.T) {
	intake := &intakeFake{}
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, intake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, webhookRequest(t, inbox.WebhookPayload{
		MessageID:    "msg-1",
		InboxAddress: "proj-abc@in.extractly.io",
	}, false))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, intake.lastMsg)
}

func TestInboundEmailRequiresIdentifiers(t *testing.T) {
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, webhookRequest(t, inbox.WebhookPayload{}, true))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInboundEmailUnavailableWithoutIntake(t *testing.T) {
	srv := NewServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, nil, secret,
		func() error { return nil }, metrics.NewHTTPServerMetrics("test"), slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, webhookRequest(t, inbox.WebhookPayload{
		MessageID:    "msg-1",
		InboxAddress: "proj-abc@in.extractly.io",
	}, true))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestInboundEmailIntakeFailureReturns500(t *testing.T) {
	intake := &intakeFake{err: errors.New("provider down")}
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, intake)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, webhookRequest(t, inbox.WebhookPayload{
		MessageID:    "msg-1",
		InboxAddress: "proj-abc@in.extractly.io",
	}, true))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestServer(&sessionsFake{}, &ingestorFake{}, &exporterFake{}, &intakeFake{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "extractly_http_in_flight_requests")
}
