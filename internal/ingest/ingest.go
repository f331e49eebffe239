package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Result is the per-document intake outcome.
type Result struct {
	DocumentID   string
	FileName     string
	Deduplicated bool
	HashHex      string
	TextLen      int
	UploadedAt   time.Time
}

// Upload is one document handed to intake, from a direct upload or an email
// attachment.
type Upload struct {
	FileName string
	MIMEType string
	Source   string // "upload" or "email"
	Data     []byte
}

// Ingestor is the behavior the HTTP and email intakes depend on.
type Ingestor interface {
	// IngestDocument attaches one document to a session, extracting its text
	// at intake time.
	IngestDocument(ctx context.Context, sessionID uuid.UUID, up Upload) (Result, error)
}
