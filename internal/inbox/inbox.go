// Package inbox talks to the hosted email-inbox provider. Each project may
// own one inbox address; mail sent there is held by the provider until the
// intake worker fetches, ingests, and acknowledges it.
package inbox

import (
	"context"
	"time"
)

// Message is a provider-held email, metadata only. Attachments are fetched
// separately because their payloads can be large.
type Message struct {
	ID           string           `json:"id"`
	InboxAddress string           `json:"inbox_address"`
	From         string           `json:"from"`
	Subject      string           `json:"subject"`
	ReceivedAt   time.Time        `json:"received_at"`
	Attachments  []AttachmentMeta `json:"attachments"`
}

// AttachmentMeta describes one attachment without its payload.
type AttachmentMeta struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Attachment is a fetched attachment payload.
type Attachment struct {
	AttachmentMeta
	Content []byte
}

// Provider is the inbox API surface the intake worker needs.
type Provider interface {
	CreateInbox(ctx context.Context, label string) (string, error)
	ListMessages(ctx context.Context, inboxAddress string) ([]Message, error)
	FetchAttachment(ctx context.Context, messageID, attachmentID string) (Attachment, error)
	AckMessage(ctx context.Context, messageID string) error
}
