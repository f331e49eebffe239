// Code generated by ent, DO NOT EDIT.

package validationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldSessionID, v))
}

// CollectionID applies equality check predicate on the "collection_id" field. It's identical to CollectionIDEQ.
func CollectionID(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldCollectionID, v))
}

// RecordIndex applies equality check predicate on the "record_index" field. It's identical to RecordIndexEQ.
func RecordIndex(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldRecordIndex, v))
}

// FieldName applies equality check predicate on the "field_name" field. It's identical to FieldNameEQ.
func FieldName(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldFieldName, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldExtractedValue, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldValidationStatus, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldReasoning, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// FieldIDEQ applies the EQ predicate on the "field_id" field.
func FieldIDEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldFieldID, v))
}

// FieldIDNEQ applies the NEQ predicate on the "field_id" field.
func FieldIDNEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldFieldID, v))
}

// FieldIDIn applies the In predicate on the "field_id" field.
func FieldIDIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldFieldID, vs...))
}

// FieldIDNotIn applies the NotIn predicate on the "field_id" field.
func FieldIDNotIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldFieldID, vs...))
}

// FieldIDGT applies the GT predicate on the "field_id" field.
func FieldIDGT(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldFieldID, v))
}

// FieldIDGTE applies the GTE predicate on the "field_id" field.
func FieldIDGTE(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldFieldID, v))
}

// FieldIDLT applies the LT predicate on the "field_id" field.
func FieldIDLT(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldFieldID, v))
}

// FieldIDLTE applies the LTE predicate on the "field_id" field.
func FieldIDLTE(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldFieldID, v))
}

// CollectionIDEQ applies the EQ predicate on the "collection_id" field.
func CollectionIDEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldCollectionID, v))
}

// CollectionIDNEQ applies the NEQ predicate on the "collection_id" field.
func CollectionIDNEQ(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldCollectionID, v))
}

// CollectionIDIn applies the In predicate on the "collection_id" field.
func CollectionIDIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldCollectionID, vs...))
}

// CollectionIDNotIn applies the NotIn predicate on the "collection_id" field.
func CollectionIDNotIn(vs ...uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldCollectionID, vs...))
}

// CollectionIDGT applies the GT predicate on the "collection_id" field.
func CollectionIDGT(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldCollectionID, v))
}

// CollectionIDGTE applies the GTE predicate on the "collection_id" field.
func CollectionIDGTE(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldCollectionID, v))
}

// CollectionIDLT applies the LT predicate on the "collection_id" field.
func CollectionIDLT(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldCollectionID, v))
}

// CollectionIDLTE applies the LTE predicate on the "collection_id" field.
func CollectionIDLTE(v uuid.UUID) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldCollectionID, v))
}

// CollectionIDIsNil applies the IsNil predicate on the "collection_id" field.
func CollectionIDIsNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIsNull(FieldCollectionID))
}

// CollectionIDNotNil applies the NotNil predicate on the "collection_id" field.
func CollectionIDNotNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotNull(FieldCollectionID))
}

// RecordIndexEQ applies the EQ predicate on the "record_index" field.
func RecordIndexEQ(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldRecordIndex, v))
}

// RecordIndexNEQ applies the NEQ predicate on the "record_index" field.
func RecordIndexNEQ(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldRecordIndex, v))
}

// RecordIndexIn applies the In predicate on the "record_index" field.
func RecordIndexIn(vs ...int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldRecordIndex, vs...))
}

// RecordIndexNotIn applies the NotIn predicate on the "record_index" field.
func RecordIndexNotIn(vs ...int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldRecordIndex, vs...))
}

// RecordIndexGT applies the GT predicate on the "record_index" field.
func RecordIndexGT(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldRecordIndex, v))
}

// RecordIndexGTE applies the GTE predicate on the "record_index" field.
func RecordIndexGTE(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldRecordIndex, v))
}

// RecordIndexLT applies the LT predicate on the "record_index" field.
func RecordIndexLT(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldRecordIndex, v))
}

// RecordIndexLTE applies the LTE predicate on the "record_index" field.
func RecordIndexLTE(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldRecordIndex, v))
}

// FieldNameEQ applies the EQ predicate on the "field_name" field.
func FieldNameEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldFieldName, v))
}

// FieldNameNEQ applies the NEQ predicate on the "field_name" field.
func FieldNameNEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldFieldName, v))
}

// FieldNameIn applies the In predicate on the "field_name" field.
func FieldNameIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldFieldName, vs...))
}

// FieldNameNotIn applies the NotIn predicate on the "field_name" field.
func FieldNameNotIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldFieldName, vs...))
}

// FieldNameGT applies the GT predicate on the "field_name" field.
func FieldNameGT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldFieldName, v))
}

// FieldNameGTE applies the GTE predicate on the "field_name" field.
func FieldNameGTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldFieldName, v))
}

// FieldNameLT applies the LT predicate on the "field_name" field.
func FieldNameLT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldFieldName, v))
}

// FieldNameLTE applies the LTE predicate on the "field_name" field.
func FieldNameLTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldFieldName, v))
}

// FieldNameContains applies the Contains predicate on the "field_name" field.
func FieldNameContains(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContains(FieldFieldName, v))
}

// FieldNameHasPrefix applies the HasPrefix predicate on the "field_name" field.
func FieldNameHasPrefix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasPrefix(FieldFieldName, v))
}

// FieldNameHasSuffix applies the HasSuffix predicate on the "field_name" field.
func FieldNameHasSuffix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasSuffix(FieldFieldName, v))
}

// FieldNameEqualFold applies the EqualFold predicate on the "field_name" field.
func FieldNameEqualFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEqualFold(FieldFieldName, v))
}

// FieldNameContainsFold applies the ContainsFold predicate on the "field_name" field.
func FieldNameContainsFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContainsFold(FieldFieldName, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotNull(FieldExtractedValue))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContainsFold(FieldExtractedValue, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContainsFold(FieldValidationStatus, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldConfidenceScore, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldContainsFold(FieldReasoning, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ValidationRecord {
	return predicate.ValidationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.ExtractionSession) predicate.ValidationRecord {
	return predicate.ValidationRecord(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationRecord) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationRecord) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationRecord) predicate.ValidationRecord {
	return predicate.ValidationRecord(sql.NotPredicates(p))
}
