package inbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/ingest"
	"github.com/extractly-io/extractly/internal/repository"
)

// SessionPublisher hands a freshly created session to the extraction queue.
type SessionPublisher interface {
	PublishSession(ctx context.Context, sessionID uuid.UUID) error
}

// IntakeService turns provider-held email into extraction sessions: resolve
// the project by inbox address, open a session, ingest every usable
// attachment, ack the message, then enqueue the session.
type IntakeService struct {
	provider  Provider
	projects  repository.ProjectRepository
	sessions  repository.SessionRepository
	ingestor  ingest.Ingestor
	publisher SessionPublisher
	log       *slog.Logger
}

func NewIntakeService(
	provider Provider,
	projects repository.ProjectRepository,
	sessions repository.SessionRepository,
	ingestor ingest.Ingestor,
	publisher SessionPublisher,
	logger *slog.Logger,
) *IntakeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntakeService{
		provider:  provider,
		projects:  projects,
		sessions:  sessions,
		ingestor:  ingestor,
		publisher: publisher,
		log:       logger,
	}
}

// IntakeResult summarizes what one message produced.
type IntakeResult struct {
	SessionID uuid.UUID
	Ingested  int
	Skipped   int
}

// HandleMessage processes one inbound message end to end. Mail addressed to
// an inbox no project owns is acked and dropped; a message whose attachments
// are all unusable still produces an empty session so the sender's upload is
// visible as a failed run rather than silently vanishing.
func (s *IntakeService) HandleMessage(ctx context.Context, messageID, inboxAddress string) (IntakeResult, error) {
	if s.provider == nil {
		return IntakeResult{}, errors.New("inbox provider is not configured")
	}
	project, err := s.projects.GetByInboxAddress(ctx, inboxAddress)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Warn("intake.unknown_inbox", "message_id", messageID, "inbox_address", inboxAddress)
			return IntakeResult{}, s.provider.AckMessage(ctx, messageID)
		}
		return IntakeResult{}, fmt.Errorf("resolve inbox address: %w", err)
	}

	msgs, err := s.provider.ListMessages(ctx, inboxAddress)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("list messages: %w", err)
	}
	var msg *Message
	for i := range msgs {
		if msgs[i].ID == messageID {
			msg = &msgs[i]
			break
		}
	}
	if msg == nil {
		// already consumed by an earlier delivery of the same webhook
		s.log.Info("intake.message_gone", "message_id", messageID)
		return IntakeResult{}, nil
	}

	name := msg.Subject
	if name == "" {
		name = fmt.Sprintf("Email from %s at %s", msg.From, msg.ReceivedAt.Format(time.RFC3339))
	}
	session, err := s.sessions.Create(ctx, project.ID, name)
	if err != nil {
		return IntakeResult{}, fmt.Errorf("create session: %w", err)
	}

	res := IntakeResult{SessionID: session.ID}
	for _, meta := range msg.Attachments {
		if !constants.MIMEAllowed(meta.ContentType) {
			s.log.Info("intake.attachment_skipped",
				"message_id", messageID, "filename", meta.Filename, "content_type", meta.ContentType)
			res.Skipped++
			continue
		}
		att, err := s.provider.FetchAttachment(ctx, messageID, meta.ID)
		if err != nil {
			s.log.Error("intake.attachment_fetch_failed",
				"message_id", messageID, "attachment_id", meta.ID, "error", err)
			res.Skipped++
			continue
		}
		if _, err := s.ingestor.IngestDocument(ctx, session.ID, ingest.Upload{
			FileName: att.Filename,
			MIMEType: att.ContentType,
			Source:   "email",
			Data:     att.Content,
		}); err != nil {
			s.log.Error("intake.attachment_ingest_failed",
				"message_id", messageID, "filename", att.Filename, "error", err)
			res.Skipped++
			continue
		}
		res.Ingested++
	}

	if err := s.provider.AckMessage(ctx, messageID); err != nil {
		// the session exists either way; dedupe by content hash absorbs a redelivery
		s.log.Warn("intake.ack_failed", "message_id", messageID, "error", err)
	}

	if res.Ingested == 0 {
		if err := s.sessions.Finish(ctx, session.ID, constants.SessionStatusFailed, "no usable attachments in email"); err != nil {
			s.log.Error("intake.finish_failed", "session_id", session.ID, "error", err)
		}
		s.log.Warn("intake.no_usable_attachments",
			"message_id", messageID, "session_id", session.ID, "skipped", res.Skipped)
		return res, nil
	}

	if s.publisher != nil {
		if err := s.publisher.PublishSession(ctx, session.ID); err != nil {
			return res, fmt.Errorf("enqueue session: %w", err)
		}
	}
	s.log.Info("intake.message_ok",
		"message_id", messageID, "project_id", project.ID, "session_id", session.ID,
		"ingested", res.Ingested, "skipped", res.Skipped)
	return res, nil
}
