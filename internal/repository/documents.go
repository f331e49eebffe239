package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
)

// Document carries the writable attributes of a session document row.
type Document struct {
	FileName         string
	MIMEType         string
	FileSize         int
	ContentHash      []byte
	Source           string
	ExtractedContent string
	UploadedAt       time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SessionDocument, error)
	GetBySessionAndHash(ctx context.Context, sessionID uuid.UUID, hash []byte) (*ent.SessionDocument, error)
	Create(ctx context.Context, sessionID uuid.UUID, d *Document) (*ent.SessionDocument, error)
	// UpsertByHash returns the existing row (true) when the same content was
	// already attached to the session, otherwise creates a new row (false).
	UpsertByHash(ctx context.Context, sessionID uuid.UUID, d *Document) (*ent.SessionDocument, bool, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*ent.SessionDocument, error)
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.SessionDocument, error) {
	return r.client.SessionDocument.Get(ctx, id)
}

func (r *documentRepository) GetBySessionAndHash(ctx context.Context, sessionID uuid.UUID, hash []byte) (*ent.SessionDocument, error) {
	return r.client.SessionDocument.Query().
		Where(
			sessiondocument.SessionID(sessionID),
			sessiondocument.ContentHash(hash),
		).Only(ctx)
}

func (r *documentRepository) Create(ctx context.Context, sessionID uuid.UUID, d *Document) (*ent.SessionDocument, error) {
	uploadedAt := d.UploadedAt
	if uploadedAt.IsZero() {
		uploadedAt = time.Now()
	}
	row, err := r.client.SessionDocument.Create().
		SetSessionID(sessionID).
		SetFileName(d.FileName).
		SetMimeType(d.MIMEType).
		SetFileSize(d.FileSize).
		SetContentHash(d.ContentHash).
		SetSource(d.Source).
		SetExtractedContent(d.ExtractedContent).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create session document", "session_id", sessionID, "file_name", d.FileName, "error", err)
		return nil, err
	}
	r.logger.Info("session document stored", "session_id", sessionID, "document_id", row.ID, "file_name", d.FileName, "size", d.FileSize)
	return row, nil
}

func (r *documentRepository) UpsertByHash(ctx context.Context, sessionID uuid.UUID, d *Document) (*ent.SessionDocument, bool, error) {
	if existing, err := r.GetBySessionAndHash(ctx, sessionID, d.ContentHash); err == nil {
		r.logger.Info("session document deduplicated", "session_id", sessionID, "document_id", existing.ID, "file_name", d.FileName)
		return existing, true, nil
	}
	row, err := r.Create(ctx, sessionID, d)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*ent.SessionDocument, error) {
	return r.client.SessionDocument.Query().
		Where(sessiondocument.SessionID(sessionID)).
		Order(sessiondocument.ByUploadedAt()).
		All(ctx)
}
