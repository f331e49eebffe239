package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/internal/common"
)

// StatusRecord is the read-only snapshot served to polling clients.
type StatusRecord struct {
	SessionID       string                  `json:"session_id"`
	Status          constants.SessionStatus `json:"status"`
	ProgressMessage string                  `json:"progress_message,omitempty"`
	ErrorMessage    string                  `json:"error_message,omitempty"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type SessionRepository interface {
	Create(ctx context.Context, projectID uuid.UUID, name string) (*ent.ExtractionSession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ExtractionSession, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*ent.ExtractionSession, error)
	Status(ctx context.Context, id uuid.UUID) (StatusRecord, error)

	// MarkProcessing moves a pending session to processing and stamps
	// started_at. SetProgress updates the progress message of a running
	// session. Finish moves a session to a terminal status. All three refuse
	// to touch a session that is already terminal.
	MarkProcessing(ctx context.Context, id uuid.UUID, progress string) error
	SetProgress(ctx context.Context, id uuid.UUID, progress string) error
	SetModelName(ctx context.Context, id uuid.UUID, model string) error
	Finish(ctx context.Context, id uuid.UUID, status constants.SessionStatus, errMessage string) error
}

type sessionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSessionRepository(client *ent.Client, logger *slog.Logger) SessionRepository {
	return &sessionRepository{
		client: client,
		logger: logger,
	}
}

func (r *sessionRepository) Create(ctx context.Context, projectID uuid.UUID, name string) (*ent.ExtractionSession, error) {
	row, err := r.client.ExtractionSession.Create().
		SetProjectID(projectID).
		SetName(name).
		SetStatus(string(constants.SessionStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create session", "project_id", projectID, "error", err)
		return nil, err
	}
	r.logger.Info("session created", "session_id", row.ID, "project_id", projectID)
	return row, nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.ExtractionSession, error) {
	return r.client.ExtractionSession.Get(ctx, id)
}

func (r *sessionRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*ent.ExtractionSession, error) {
	return r.client.ExtractionSession.Query().
		Where(extractionsession.ProjectID(projectID)).
		Order(extractionsession.ByCreatedAt()).
		All(ctx)
}

func (r *sessionRepository) Status(ctx context.Context, id uuid.UUID) (StatusRecord, error) {
	row, err := r.GetByID(ctx, id)
	if err != nil {
		return StatusRecord{}, err
	}
	rec := StatusRecord{
		SessionID: row.ID.String(),
		Status:    constants.SessionStatus(row.Status),
		UpdatedAt: row.UpdatedAt,
	}
	if row.ProgressMessage != nil {
		rec.ProgressMessage = *row.ProgressMessage
	}
	if row.ErrorMessage != nil {
		rec.ErrorMessage = *row.ErrorMessage
	}
	return rec, nil
}

// terminalStatuses is the set a session can never leave.
var terminalStatuses = []string{
	string(constants.SessionStatusCompleted),
	string(constants.SessionStatusFailed),
	string(constants.SessionStatusError),
}

func (r *sessionRepository) MarkProcessing(ctx context.Context, id uuid.UUID, progress string) error {
	n, err := r.client.ExtractionSession.Update().
		Where(
			extractionsession.ID(id),
			extractionsession.StatusNotIn(terminalStatuses...),
		).
		SetStatus(string(constants.SessionStatusProcessing)).
		SetProgressMessage(progress).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark session processing", "session_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.notUpdatable(ctx, id)
	}
	r.logger.Info("session processing", "session_id", id)
	return nil
}

func (r *sessionRepository) SetProgress(ctx context.Context, id uuid.UUID, progress string) error {
	n, err := r.client.ExtractionSession.Update().
		Where(
			extractionsession.ID(id),
			extractionsession.StatusNotIn(terminalStatuses...),
		).
		SetProgressMessage(progress).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set session progress", "session_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.notUpdatable(ctx, id)
	}
	return nil
}

func (r *sessionRepository) SetModelName(ctx context.Context, id uuid.UUID, model string) error {
	n, err := r.client.ExtractionSession.Update().
		Where(
			extractionsession.ID(id),
			extractionsession.StatusNotIn(terminalStatuses...),
		).
		SetModelName(model).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set session model", "session_id", id, "error", err)
		return err
	}
	if n == 0 {
		return r.notUpdatable(ctx, id)
	}
	return nil
}

func (r *sessionRepository) Finish(ctx context.Context, id uuid.UUID, status constants.SessionStatus, errMessage string) error {
	if !status.IsTerminal() {
		return common.NewAppError("SESSION_STATUS", "finish requires a terminal status", common.ErrInvalidInput)
	}
	upd := r.client.ExtractionSession.Update().
		Where(
			extractionsession.ID(id),
			extractionsession.StatusNotIn(terminalStatuses...),
		).
		SetStatus(string(status)).
		SetFinishedAt(time.Now())
	if errMessage != "" {
		upd.SetErrorMessage(errMessage)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to finish session", "session_id", id, "status", status, "error", err)
		return err
	}
	if n == 0 {
		return r.notUpdatable(ctx, id)
	}
	if status == constants.SessionStatusCompleted {
		r.logger.Info("session finished", "session_id", id, "status", status)
	} else {
		r.logger.Warn("session finished", "session_id", id, "status", status, "error", errMessage)
	}
	return nil
}

// notUpdatable distinguishes a missing session from one already terminal.
func (r *sessionRepository) notUpdatable(ctx context.Context, id uuid.UUID) error {
	exists, err := r.client.ExtractionSession.Query().
		Where(extractionsession.ID(id)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrNotFound
	}
	return common.ErrTerminalStatus
}
