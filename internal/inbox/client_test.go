package inbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractly-io/extractly/internal/common"
)

func newTestClient(baseURL string) *Client {
	return NewClient(common.InboxConfig{
		BaseURL: baseURL,
		APIKey:  "inbox-key",
		Timeout: 5 * time.Second,
	}, slog.New(slog.DiscardHandler))
}

func TestCreateInbox(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.Method + " " + r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"address": "proj-7f@mail.extractly.io"})
	}))
	defer srv.Close()

	addr, err := newTestClient(srv.URL).CreateInbox(context.Background(), "Invoices Q3")
	require.NoError(t, err)
	assert.Equal(t, "proj-7f@mail.extractly.io", addr)
	assert.Equal(t, "Bearer inbox-key", gotAuth)
	assert.Equal(t, "POST /v1/inboxes", gotPath)
	assert.Equal(t, "Invoices Q3", gotBody["label"])
}

func TestCreateInboxRejectsEmptyAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateInbox(context.Background(), "x")
	assert.Error(t, err)
}

func TestListMessages(t *testing.T) {
	received := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/inboxes/proj-7f@mail.extractly.io/messages", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"messages": []Message{{
				ID:           "msg-1",
				InboxAddress: "proj-7f@mail.extractly.io",
				From:         "vendor@acme.test",
				Subject:      "Invoice INV-42",
				ReceivedAt:   received,
				Attachments:  []AttachmentMeta{{ID: "att-1", Filename: "invoice.pdf", ContentType: "application/pdf", Size: 1024}},
			}},
		})
	}))
	defer srv.Close()

	msgs, err := newTestClient(srv.URL).ListMessages(context.Background(), "proj-7f@mail.extractly.io")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "msg-1", msgs[0].ID)
	assert.Equal(t, "Invoice INV-42", msgs[0].Subject)
	assert.True(t, msgs[0].ReceivedAt.Equal(received))
	require.Len(t, msgs[0].Attachments, 1)
	assert.Equal(t, "invoice.pdf", msgs[0].Attachments[0].Filename)
}

func TestFetchAttachmentDecodesContent(t *testing.T) {
	payload := []byte("%PDF-1.7 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages/msg-1/attachments/att-1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":           "att-1",
			"filename":     "invoice.pdf",
			"content_type": "application/pdf",
			"size":         len(payload),
			"content":      base64.StdEncoding.EncodeToString(payload),
		})
	}))
	defer srv.Close()

	att, err := newTestClient(srv.URL).FetchAttachment(context.Background(), "msg-1", "att-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", att.Filename)
	assert.Equal(t, payload, att.Content)
}

func TestFetchAttachmentRejectsBadBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "att-1", "content": "not base64!!!"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchAttachment(context.Background(), "msg-1", "att-1")
	assert.Error(t, err)
}

func TestAckMessage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv.URL).AckMessage(context.Background(), "msg-1"))
	assert.Equal(t, "DELETE /v1/messages/msg-1", gotPath)
}

func TestClientSurfacesProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such inbox", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListMessages(context.Background(), "ghost@mail.extractly.io")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inbox status 404")
}
