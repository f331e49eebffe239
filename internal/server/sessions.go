package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	extractlypb "github.com/extractly-io/extractly/gen/proto/extractly/v1"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/inbox"
	"github.com/extractly-io/extractly/internal/repository"
)

type SessionsServer struct {
	extractlypb.UnimplementedSessionsServiceServer
	sessions  repository.SessionRepository
	projects  repository.ProjectRepository
	records   repository.RecordRepository
	publisher inbox.SessionPublisher
	logger    *slog.Logger
}

func NewSessionsServer(
	sessions repository.SessionRepository,
	projects repository.ProjectRepository,
	records repository.RecordRepository,
	publisher inbox.SessionPublisher,
	logger *slog.Logger,
) *SessionsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionsServer{
		sessions:  sessions,
		projects:  projects,
		records:   records,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *SessionsServer) CreateSession(ctx context.Context, req *extractlypb.CreateSessionRequest) (*extractlypb.CreateSessionResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, common.InternalError("project lookup failed")
	}
	if !exists {
		return nil, common.NotFoundError("project not found")
	}

	row, err := s.sessions.Create(ctx, projectID, req.GetName())
	if err != nil {
		s.logger.Error("create session failed", "project_id", projectID, "error", err)
		return nil, common.InternalError("create session failed")
	}
	return &extractlypb.CreateSessionResponse{Session: toPBSession(row)}, nil
}

func (s *SessionsServer) GetSession(ctx context.Context, req *extractlypb.GetSessionRequest) (*extractlypb.GetSessionResponse, error) {
	id, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	row, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("session not found")
		}
		return nil, common.InternalError("get session failed")
	}
	return &extractlypb.GetSessionResponse{Session: toPBSession(row)}, nil
}

func (s *SessionsServer) ListSessions(ctx context.Context, req *extractlypb.ListSessionsRequest) (*extractlypb.ListSessionsResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.sessions.ListByProject(ctx, projectID)
	if err != nil {
		return nil, common.InternalError("list sessions failed")
	}
	out := make([]*extractlypb.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBSession(row))
	}
	return &extractlypb.ListSessionsResponse{Sessions: out}, nil
}

func (s *SessionsServer) GetSessionStatus(ctx context.Context, req *extractlypb.GetSessionStatusRequest) (*extractlypb.GetSessionStatusResponse, error) {
	id, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.sessions.Status(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("session not found")
		}
		return nil, common.InternalError("status lookup failed")
	}
	return &extractlypb.GetSessionStatusResponse{
		SessionId:       rec.SessionID,
		Status:          string(rec.Status),
		ProgressMessage: rec.ProgressMessage,
		ErrorMessage:    rec.ErrorMessage,
		UpdatedAt:       rec.UpdatedAt.Format(time.RFC3339Nano),
	}, nil
}

// StartExtraction enqueues the session for the worker pool. Re-starting a
// terminal session is refused; the caller creates a new session instead.
func (s *SessionsServer) StartExtraction(ctx context.Context, req *extractlypb.StartExtractionRequest) (*extractlypb.StartExtractionResponse, error) {
	id, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.sessions.Status(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("session not found")
		}
		return nil, common.InternalError("status lookup failed")
	}
	if rec.Status.IsTerminal() {
		return nil, common.FailedPreconditionError("session already finished")
	}
	if s.publisher == nil {
		return nil, common.FailedPreconditionError("extraction queue is not configured")
	}

	if err := s.publisher.PublishSession(ctx, id); err != nil {
		s.logger.Error("enqueue session failed", "session_id", id, "error", err)
		return nil, common.InternalError("enqueue session failed")
	}
	return &extractlypb.StartExtractionResponse{
		SessionId: id.String(),
		Status:    string(rec.Status),
	}, nil
}

func (s *SessionsServer) ListRecords(ctx context.Context, req *extractlypb.ListRecordsRequest) (*extractlypb.ListRecordsResponse, error) {
	id, err := parseID(req.GetSessionId(), "session_id")
	if err != nil {
		return nil, err
	}
	rows, err := s.records.ListBySession(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("session not found")
		}
		return nil, common.InternalError("list records failed")
	}
	out := make([]*extractlypb.ValidationRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBRecord(row))
	}
	return &extractlypb.ListRecordsResponse{Records: out}, nil
}
