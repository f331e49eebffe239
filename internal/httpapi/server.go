// Package httpapi is the public HTTP surface: session status for polling
// clients, document upload, session export, and the inbound-email webhook.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/inbox"
	"github.com/extractly-io/extractly/internal/ingest"
	"github.com/extractly-io/extractly/internal/observability/metrics"
	"github.com/extractly-io/extractly/internal/repository"
)

const serviceName = "extractly-api"

// Exporter produces session result files.
type Exporter interface {
	ExportSessionXLSX(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	ExportSessionCSV(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
}

// EmailIntake processes one inbound-email webhook delivery.
type EmailIntake interface {
	HandleMessage(ctx context.Context, messageID, inboxAddress string) (inbox.IntakeResult, error)
}

type Server struct {
	sessions repository.SessionRepository
	ingestor ingest.Ingestor
	exporter Exporter
	intake   EmailIntake
	secret   string
	health   func() error
	metrics  *metrics.HTTPServerMetrics
	log      *slog.Logger
}

func NewServer(
	sessions repository.SessionRepository,
	ingestor ingest.Ingestor,
	exporter Exporter,
	intake EmailIntake,
	webhookSecret string,
	health func() error,
	m *metrics.HTTPServerMetrics,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		sessions: sessions,
		ingestor: ingestor,
		exporter: exporter,
		intake:   intake,
		secret:   webhookSecret,
		health:   health,
		metrics:  m,
		log:      logger,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(propagateRequestID)
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(func(next http.Handler) http.Handler {
			return s.metrics.Middleware(serviceName, next)
		})
	}

	r.Get("/healthz", s.handleHealthz)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/sessions/{sessionID}/status", s.handleSessionStatus)
		r.Post("/sessions/{sessionID}/documents", s.handleUploadDocument)
		r.Get("/sessions/{sessionID}/export", s.handleExportSession)
		r.Post("/inbound-email", s.handleInboundEmail)
	})
	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(); err != nil {
			s.log.Error("healthz failed", "error", err)
			s.respondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	rec, err := s.sessions.Status(r.Context(), sessionID)
	if err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "session not found")
			return
		}
		s.log.Error("status lookup failed", "session_id", sessionID, "error", err)
		s.respondError(w, http.StatusInternalServerError, "status lookup failed")
		return
	}
	if s.metrics != nil {
		s.metrics.RecordStatusPoll(serviceName, string(rec.Status))
	}
	s.respondJSON(w, http.StatusOK, rec)
}

// handleUploadDocument accepts one multipart file per request, form field
// "file".
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	data, err := readLimited(file)
	if err != nil {
		s.respondError(w, http.StatusRequestEntityTooLarge, "document exceeds size limit")
		s.recordIngest("upload", "too_large")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	res, err := s.ingestor.IngestDocument(r.Context(), sessionID, ingest.Upload{
		FileName: header.Filename,
		MIMEType: mimeType,
		Source:   "upload",
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTerminalStatus):
			s.respondError(w, http.StatusConflict, "session already finished")
			s.recordIngest("upload", "terminal_session")
		case errors.Is(err, common.ErrInvalidInput):
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
			s.recordIngest("upload", "rejected")
		case ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound):
			s.respondError(w, http.StatusNotFound, "session not found")
			s.recordIngest("upload", "no_session")
		default:
			s.log.Error("upload failed", "request_id", common.RequestIDFromContext(r.Context()), "session_id", sessionID, "error", err)
			s.respondError(w, http.StatusInternalServerError, "upload failed")
			s.recordIngest("upload", "error")
		}
		return
	}

	s.recordIngest("upload", "ok")
	s.respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	var (
		out         []byte
		contentType string
		filename    string
		err         error
	)
	switch format {
	case "xlsx":
		out, err = s.exporter.ExportSessionXLSX(r.Context(), sessionID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = sessionID.String() + ".xlsx"
	case "csv":
		out, err = s.exporter.ExportSessionCSV(r.Context(), sessionID)
		contentType = "text/csv"
		filename = sessionID.String() + ".csv"
	default:
		s.respondError(w, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}
	if err != nil {
		if ent.IsNotFound(err) || errors.Is(err, common.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "session not found")
			return
		}
		s.log.Error("export failed", "session_id", sessionID, "format", format, "error", err)
		s.respondError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// handleInboundEmail is the provider webhook. The heavy lifting (fetching
// attachments and building a session) happens synchronously; the provider
// retries on non-2xx so a transient failure is redelivered.
func (s *Server) handleInboundEmail(w http.ResponseWriter, r *http.Request) {
	if s.intake == nil {
		s.respondError(w, http.StatusServiceUnavailable, "email intake is not configured")
		s.recordEmail("not_configured")
		return
	}
	body, err := readLimited(r.Body)
	if err != nil {
		s.respondError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}
	sig := r.Header.Get("X-Inbox-Signature")
	if !inbox.VerifySignature(s.secret, body, sig) {
		s.log.Warn("webhook signature rejected")
		s.respondError(w, http.StatusUnauthorized, "bad signature")
		s.recordEmail("bad_signature")
		return
	}

	var payload inbox.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid payload")
		s.recordEmail("bad_payload")
		return
	}
	if payload.MessageID == "" || payload.InboxAddress == "" {
		s.respondError(w, http.StatusBadRequest, "message_id and inbox_address are required")
		s.recordEmail("bad_payload")
		return
	}

	res, err := s.intake.HandleMessage(r.Context(), payload.MessageID, payload.InboxAddress)
	if err != nil {
		s.log.Error("email intake failed", "request_id", common.RequestIDFromContext(r.Context()), "message_id", payload.MessageID, "error", err)
		s.respondError(w, http.StatusInternalServerError, "intake failed")
		s.recordEmail("error")
		return
	}

	s.recordEmail("ok")
	resp := map[string]any{"ingested": res.Ingested, "skipped": res.Skipped}
	if res.SessionID != uuid.Nil {
		resp["session_id"] = res.SessionID.String()
	}
	s.respondJSON(w, http.StatusAccepted, resp)
}

// propagateRequestID copies chi's request ID into the shared context key, so
// layers below the router can tag their logs without importing chi.
func propagateRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if rid := middleware.GetReqID(ctx); rid != "" {
			ctx = common.WithRequestID(ctx, rid)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) recordIngest(source, outcome string) {
	if s.metrics != nil {
		s.metrics.RecordDocumentIngested(serviceName, source, outcome)
	}
}

func (s *Server) recordEmail(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordEmailMessage(serviceName, outcome)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}

// readLimited reads a request payload, refusing anything over the document
// size limit.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(constants.MaxFileSize)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > constants.MaxFileSize {
		return nil, errors.New("payload exceeds size limit")
	}
	return data, nil
}
