package inbox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// WebhookPayload is what the provider posts to us when mail arrives. It
// carries metadata only; the intake worker fetches the message body and
// attachments over the API.
type WebhookPayload struct {
	MessageID    string    `json:"message_id"`
	InboxAddress string    `json:"inbox_address"`
	From         string    `json:"from"`
	Subject      string    `json:"subject"`
	ReceivedAt   time.Time `json:"received_at"`
}

// SignBody computes the hex HMAC-SHA256 signature the provider sends in the
// X-Inbox-Signature header.
func SignBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook body against its signature header using a
// constant-time comparison. An empty secret disables verification.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" {
		return true
	}
	want := SignBody(secret, body)
	return hmac.Equal([]byte(want), []byte(signature))
}
