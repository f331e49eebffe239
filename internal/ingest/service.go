package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/repository"
)

// Service turns uploads and email attachments into session documents:
// MIME/size gate, sha256 dedupe per session, text extraction at intake.
type Service struct {
	sessions  repository.SessionRepository
	documents repository.DocumentRepository
	logger    *slog.Logger
}

func NewService(sessions repository.SessionRepository, documents repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sessions: sessions, documents: documents, logger: logger}
}

func (s *Service) IngestDocument(ctx context.Context, sessionID uuid.UUID, up Upload) (Result, error) {
	if up.FileName == "" {
		return Result{}, common.NewAppError("INGEST_INPUT", "file name is required", common.ErrInvalidInput)
	}
	if len(up.Data) == 0 {
		return Result{}, common.NewAppError("INGEST_INPUT", "empty document", common.ErrInvalidInput)
	}
	if len(up.Data) > constants.MaxFileSize {
		return Result{}, common.NewAppError("INGEST_INPUT", "document exceeds size limit", common.ErrInvalidInput)
	}
	if !constants.MIMEAllowed(up.MIMEType) {
		return Result{}, common.NewAppError("INGEST_INPUT", "unsupported document type "+up.MIMEType, common.ErrInvalidInput)
	}

	// Documents attach only to sessions still open for intake.
	rec, err := s.sessions.Status(ctx, sessionID)
	if err != nil {
		return Result{}, err
	}
	if rec.Status.IsTerminal() {
		return Result{}, common.ErrTerminalStatus
	}

	sum := sha256.Sum256(up.Data)
	text, err := ExtractText(up.MIMEType, up.Data)
	if err != nil {
		s.logger.Warn("ingest.text_extraction_failed",
			"session_id", sessionID, "file_name", up.FileName, "error", err)
		// keep the document; extraction can be reattempted by the pipeline
		text = ""
	}

	source := up.Source
	if source == "" {
		source = "upload"
	}
	row, dedup, err := s.documents.UpsertByHash(ctx, sessionID, &repository.Document{
		FileName:         up.FileName,
		MIMEType:         constants.NormalizeMIME(up.MIMEType),
		FileSize:         len(up.Data),
		ContentHash:      sum[:],
		Source:           source,
		ExtractedContent: text,
		UploadedAt:       time.Now(),
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Info("ingest.document_ok",
		"session_id", sessionID,
		"document_id", row.ID,
		"file_name", up.FileName,
		"source", source,
		"deduplicated", dedup,
		"text_len", len(text),
	)
	return Result{
		DocumentID:   row.ID.String(),
		FileName:     up.FileName,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum[:]),
		TextLen:      len(text),
		UploadedAt:   row.UploadedAt,
	}, nil
}
