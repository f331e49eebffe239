package inbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/extractly-io/extractly/internal/common"
)

// Client is the HTTP implementation of Provider.
type Client struct {
	cfg        common.InboxConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.InboxConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

// CreateInbox provisions a new inbox address labelled for a project and
// returns the address the provider assigned.
func (c *Client) CreateInbox(ctx context.Context, label string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/v1/inboxes", map[string]any{"label": label})
	if err != nil {
		return "", err
	}
	var out struct {
		Address string `json:"address"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode inbox response: %w", err)
	}
	if out.Address == "" {
		return "", fmt.Errorf("inbox provider returned empty address")
	}
	c.log.Info("inbox.created", "label", label, "address", out.Address)
	return out.Address, nil
}

// ListMessages returns the messages currently held for one inbox address.
func (c *Client) ListMessages(ctx context.Context, inboxAddress string) ([]Message, error) {
	path := "/v1/inboxes/" + url.PathEscape(inboxAddress) + "/messages"
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode messages response: %w", err)
	}
	return out.Messages, nil
}

// FetchAttachment downloads one attachment payload. The provider returns the
// content base64-encoded.
func (c *Client) FetchAttachment(ctx context.Context, messageID, attachmentID string) (Attachment, error) {
	path := "/v1/messages/" + url.PathEscape(messageID) + "/attachments/" + url.PathEscape(attachmentID)
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return Attachment{}, err
	}
	var out struct {
		AttachmentMeta
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return Attachment{}, fmt.Errorf("decode attachment response: %w", err)
	}
	payload, err := base64.StdEncoding.DecodeString(out.Content)
	if err != nil {
		return Attachment{}, fmt.Errorf("decode attachment content: %w", err)
	}
	return Attachment{AttachmentMeta: out.AttachmentMeta, Content: payload}, nil
}

// AckMessage tells the provider the message has been ingested and can be
// dropped. Acking an already-dropped message is not an error.
func (c *Client) AckMessage(ctx context.Context, messageID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/v1/messages/"+url.PathEscape(messageID), nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body map[string]any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inbox http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("inbox response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("inbox status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
