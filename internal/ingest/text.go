package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"github.com/extractly-io/extractly/constants"
)

// ExtractText pulls plain text out of a document at intake time so the
// pipeline never has to reopen the original bytes. Unsupported types come
// back empty rather than failing intake.
func ExtractText(mime string, data []byte) (string, error) {
	switch constants.NormalizeMIME(mime) {
	case "application/pdf":
		return extractPDF(data)
	case "application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return extractXLSX(data)
	case "text/plain", "text/csv", "text/tab-separated-values":
		return clampContent(string(data)), nil
	default:
		return "", nil
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	tr, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var b bytes.Buffer
	if _, err := io.Copy(&b, tr); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return clampContent(b.String()), nil
}

// extractXLSX renders every sheet as pipe-separated rows with explicit blank
// markers, so downstream prompts keep row/column alignment.
func extractXLSX(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		b.WriteString("=== Worksheet: " + sheet + " ===\n")
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, cell := range row {
				cell = strings.TrimSpace(cell)
				if cell == "" {
					cell = "blank"
				}
				cells[i] = cell
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return clampContent(b.String()), nil
}

// clampContent caps stored text at the content limit without splitting a
// multi-byte rune at the cut point.
func clampContent(s string) string {
	if len(s) <= constants.MaxContentLength {
		return s
	}
	cut := constants.MaxContentLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
