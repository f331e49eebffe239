package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/repository"
)

type sessionsFake struct {
	repository.SessionRepository
	status constants.SessionStatus
}

func (f *sessionsFake) Status(_ context.Context, id uuid.UUID) (repository.StatusRecord, error) {
	return repository.StatusRecord{
		SessionID: id.String(),
		Status:    f.status,
		UpdatedAt: time.Now(),
	}, nil
}

type documentsFake struct {
	repository.DocumentRepository
	rows []*ent.SessionDocument
}

func (f *documentsFake) UpsertByHash(_ context.Context, sessionID uuid.UUID, d *repository.Document) (*ent.SessionDocument, bool, error) {
	for _, row := range f.rows {
		if row.SessionID == sessionID && bytes.Equal(row.ContentHash, d.ContentHash) {
			return row, true, nil
		}
	}
	row := &ent.SessionDocument{
		ID:               uuid.New(),
		SessionID:        sessionID,
		FileName:         d.FileName,
		MimeType:         d.MIMEType,
		FileSize:         d.FileSize,
		ContentHash:      d.ContentHash,
		Source:           d.Source,
		ExtractedContent: d.ExtractedContent,
		UploadedAt:       d.UploadedAt,
	}
	f.rows = append(f.rows, row)
	return row, false, nil
}

func newService(status constants.SessionStatus) (*Service, *documentsFake) {
	docs := &documentsFake{}
	svc := NewService(&sessionsFake{status: status}, docs, slog.New(slog.DiscardHandler))
	return svc, docs
}

func TestIngestDocumentStoresTextDocument(t *testing.T) {
	svc, docs := newService(constants.SessionStatusPending)
	sessionID := uuid.New()
	data := []byte("Invoice INV-42 total 129.90 EUR")

	res, err := svc.IngestDocument(context.Background(), sessionID, Upload{
		FileName: "invoice.txt",
		MIMEType: "text/plain; charset=utf-8",
		Data:     data,
	})
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.Equal(t, "invoice.txt", res.FileName)
	assert.False(t, res.Deduplicated)
	assert.Equal(t, len(data), res.TextLen)

	require.Len(t, docs.rows, 1)
	row := docs.rows[0]
	assert.Equal(t, "text/plain", row.MimeType)
	assert.Equal(t, "upload", row.Source, "source defaults to upload")
	assert.Equal(t, string(data), row.ExtractedContent)
}

func TestIngestDocumentDeduplicatesByContent(t *testing.T) {
	svc, docs := newService(constants.SessionStatusProcessing)
	sessionID := uuid.New()
	up := Upload{FileName: "a.txt", MIMEType: "text/plain", Source: "email", Data: []byte("same bytes")}

	first, err := svc.IngestDocument(context.Background(), sessionID, up)
	require.NoError(t, err)
	second, err := svc.IngestDocument(context.Background(), sessionID, up)
	require.NoError(t, err)

	assert.False(t, first.Deduplicated)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
	assert.Len(t, docs.rows, 1)
}

func TestIngestDocumentRejectsBadInput(t *testing.T) {
	svc, _ := newService(constants.SessionStatusPending)
	sessionID := uuid.New()

	cases := map[string]Upload{
		"missing file name": {MIMEType: "text/plain", Data: []byte("x")},
		"empty document":    {FileName: "a.txt", MIMEType: "text/plain"},
		"oversized":         {FileName: "a.txt", MIMEType: "text/plain", Data: make([]byte, constants.MaxFileSize+1)},
		"unsupported mime":  {FileName: "a.png", MIMEType: "image/png", Data: []byte("x")},
	}
	for name, up := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.IngestDocument(context.Background(), sessionID, up)
			assert.ErrorIs(t, err, common.ErrInvalidInput)
		})
	}
}

func TestIngestDocumentRefusesTerminalSession(t *testing.T) {
	for _, status := range []constants.SessionStatus{
		constants.SessionStatusCompleted,
		constants.SessionStatusFailed,
		constants.SessionStatusError,
	} {
		svc, docs := newService(status)
		_, err := svc.IngestDocument(context.Background(), uuid.New(), Upload{
			FileName: "a.txt", MIMEType: "text/plain", Data: []byte("x"),
		})
		assert.ErrorIs(t, err, common.ErrTerminalStatus, "status %s", status)
		assert.Empty(t, docs.rows)
	}
}

func TestIngestDocumentKeepsDocumentWhenExtractionYieldsNothing(t *testing.T) {
	// docx is accepted for intake but has no extractor yet
	svc, docs := newService(constants.SessionStatusPending)
	res, err := svc.IngestDocument(context.Background(), uuid.New(), Upload{
		FileName: "notes.docx",
		MIMEType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:     []byte("not really a docx"),
	})
	require.NoError(t, err)
	assert.Zero(t, res.TextLen)
	require.Len(t, docs.rows, 1)
	assert.Empty(t, docs.rows[0].ExtractedContent)
}

func TestExtractTextXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Positions"))
	require.NoError(t, f.SetCellValue("Positions", "A1", "Description"))
	require.NoError(t, f.SetCellValue("Positions", "B1", "Amount"))
	require.NoError(t, f.SetCellValue("Positions", "A2", "Consulting"))
	require.NoError(t, f.SetCellValue("Positions", "C2", "EUR"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	text, err := ExtractText("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	require.NoError(t, err)

	assert.Contains(t, text, "=== Worksheet: Positions ===")
	assert.Contains(t, text, "Description | Amount")
	assert.Contains(t, text, "Consulting | blank | EUR")
}

func TestExtractTextPDF(t *testing.T) {
	text, err := ExtractText("application/pdf", minimalPDF("Invoice INV-42"))
	require.NoError(t, err)
	assert.Contains(t, text, "INV-42")
}

func TestExtractTextPlainClampsLength(t *testing.T) {
	long := strings.Repeat("x", constants.MaxContentLength+10)
	text, err := ExtractText("text/plain", []byte(long))
	require.NoError(t, err)
	assert.Len(t, text, constants.MaxContentLength)
}

func TestExtractTextClampsAtRuneBoundary(t *testing.T) {
	long := strings.Repeat("x", constants.MaxContentLength-1) + "€€"
	text, err := ExtractText("text/plain", []byte(long))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(text))
	assert.Len(t, text, constants.MaxContentLength-1)
	assert.True(t, strings.HasSuffix(text, "x"))
}

func TestExtractTextUnsupportedTypeIsEmpty(t *testing.T) {
	text, err := ExtractText("image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractTextBrokenPDFErrors(t *testing.T) {
	_, err := ExtractText("application/pdf", []byte("definitely not a pdf"))
	assert.Error(t, err)
}

// minimalPDF assembles a one-page document whose single content stream draws
// the given text in Helvetica.
func minimalPDF(text string) []byte {
	var b bytes.Buffer
	offsets := make([]int, 6)
	b.WriteString("%PDF-1.4\n")
	writeObj := func(n int, body string) {
		offsets[n] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", n, body)
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>")
	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	writeObj(4, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")
	xref := b.Len()
	b.WriteString("xref\n0 6\n")
	b.WriteString("0000000000 65535 f \n")
	for n := 1; n <= 5; n++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}
