package constants

import "strings"

// Field types for schema fields and collection properties.
const (
	FieldTypeText    = "TEXT"
	FieldTypeNumber  = "NUMBER"
	FieldTypeDate    = "DATE"
	FieldTypeBoolean = "BOOLEAN"
	FieldTypeChoice  = "CHOICE"
)

// FieldTypes holds the allowed types for schema fields and collection properties.
var FieldTypes = []string{FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeBoolean, FieldTypeChoice}

// AllowedMIMETypes holds the document types the platform accepts for intake.
var AllowedMIMETypes = map[string]struct{}{
	"application/pdf":          {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/csv":                  {},
	"text/plain":                {},
	"text/tab-separated-values": {},
}

// File processing limits from the platform defaults.
const (
	MaxFileSize      = 10 * 1024 * 1024 // 10MiB upload cap
	MaxContentLength = 5_000_000        // cap on stored extracted text
)

// NormalizeMIME lowercases and strips any parameters from a MIME type.
func NormalizeMIME(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

// MIMEAllowed reports whether the given MIME type may be ingested.
func MIMEAllowed(mime string) bool {
	_, ok := AllowedMIMETypes[NormalizeMIME(mime)]
	return ok
}
