// Code generated by ent, DO NOT EDIT.

package sessiondocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldSessionID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldFileName, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldFileSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldContentHash, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldSource, v))
}

// ExtractedContent applies equality check predicate on the "extracted_content" field. It's identical to ExtractedContentEQ.
func ExtractedContent(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldExtractedContent, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldSessionID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContainsFold(FieldFileName, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContainsFold(FieldMimeType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldFileSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldContentHash, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContainsFold(FieldSource, v))
}

// ExtractedContentEQ applies the EQ predicate on the "extracted_content" field.
func ExtractedContentEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldExtractedContent, v))
}

// ExtractedContentNEQ applies the NEQ predicate on the "extracted_content" field.
func ExtractedContentNEQ(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldExtractedContent, v))
}

// ExtractedContentIn applies the In predicate on the "extracted_content" field.
func ExtractedContentIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldExtractedContent, vs...))
}

// ExtractedContentNotIn applies the NotIn predicate on the "extracted_content" field.
func ExtractedContentNotIn(vs ...string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldExtractedContent, vs...))
}

// ExtractedContentGT applies the GT predicate on the "extracted_content" field.
func ExtractedContentGT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldExtractedContent, v))
}

// ExtractedContentGTE applies the GTE predicate on the "extracted_content" field.
func ExtractedContentGTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldExtractedContent, v))
}

// ExtractedContentLT applies the LT predicate on the "extracted_content" field.
func ExtractedContentLT(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldExtractedContent, v))
}

// ExtractedContentLTE applies the LTE predicate on the "extracted_content" field.
func ExtractedContentLTE(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldExtractedContent, v))
}

// ExtractedContentContains applies the Contains predicate on the "extracted_content" field.
func ExtractedContentContains(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContains(FieldExtractedContent, v))
}

// ExtractedContentHasPrefix applies the HasPrefix predicate on the "extracted_content" field.
func ExtractedContentHasPrefix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasPrefix(FieldExtractedContent, v))
}

// ExtractedContentHasSuffix applies the HasSuffix predicate on the "extracted_content" field.
func ExtractedContentHasSuffix(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldHasSuffix(FieldExtractedContent, v))
}

// ExtractedContentIsNil applies the IsNil predicate on the "extracted_content" field.
func ExtractedContentIsNil() predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIsNull(FieldExtractedContent))
}

// ExtractedContentNotNil applies the NotNil predicate on the "extracted_content" field.
func ExtractedContentNotNil() predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotNull(FieldExtractedContent))
}

// ExtractedContentEqualFold applies the EqualFold predicate on the "extracted_content" field.
func ExtractedContentEqualFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEqualFold(FieldExtractedContent, v))
}

// ExtractedContentContainsFold applies the ContainsFold predicate on the "extracted_content" field.
func ExtractedContentContainsFold(v string) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldContainsFold(FieldExtractedContent, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.SessionDocument {
	return predicate.SessionDocument(sql.FieldLTE(FieldUploadedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionDocument {
	return predicate.SessionDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ExtractionSession) predicate.SessionDocument {
	return predicate.SessionDocument(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionDocument) predicate.SessionDocument {
	return predicate.SessionDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionDocument) predicate.SessionDocument {
	return predicate.SessionDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionDocument) predicate.SessionDocument {
	return predicate.SessionDocument(sql.NotPredicates(p))
}
