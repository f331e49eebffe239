// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// ValidationRecordUpdate is the builder for updating ValidationRecord entities.
type ValidationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationRecordMutation
}

// Where appends a list predicates to the ValidationRecordUpdate builder.
func (_u *ValidationRecordUpdate) Where(ps ...predicate.ValidationRecord) *ValidationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationRecordUpdate) SetSessionID(v uuid.UUID) *ValidationRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableSessionID(v *uuid.UUID) *ValidationRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *ValidationRecordUpdate) SetFieldID(v uuid.UUID) *ValidationRecordUpdate {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableFieldID(v *uuid.UUID) *ValidationRecordUpdate {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetCollectionID sets the "collection_id" field.
func (_u *ValidationRecordUpdate) SetCollectionID(v uuid.UUID) *ValidationRecordUpdate {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableCollectionID(v *uuid.UUID) *ValidationRecordUpdate {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// ClearCollectionID clears the value of the "collection_id" field.
func (_u *ValidationRecordUpdate) ClearCollectionID() *ValidationRecordUpdate {
	_u.mutation.ClearCollectionID()
	return _u
}

// SetRecordIndex sets the "record_index" field.
func (_u *ValidationRecordUpdate) SetRecordIndex(v int) *ValidationRecordUpdate {
	_u.mutation.ResetRecordIndex()
	_u.mutation.SetRecordIndex(v)
	return _u
}

// SetNillableRecordIndex sets the "record_index" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableRecordIndex(v *int) *ValidationRecordUpdate {
	if v != nil {
		_u.SetRecordIndex(*v)
	}
	return _u
}

// AddRecordIndex adds value to the "record_index" field.
func (_u *ValidationRecordUpdate) AddRecordIndex(v int) *ValidationRecordUpdate {
	_u.mutation.AddRecordIndex(v)
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ValidationRecordUpdate) SetFieldName(v string) *ValidationRecordUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableFieldName(v *string) *ValidationRecordUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ValidationRecordUpdate) SetExtractedValue(v string) *ValidationRecordUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableExtractedValue(v *string) *ValidationRecordUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ValidationRecordUpdate) ClearExtractedValue() *ValidationRecordUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ValidationRecordUpdate) SetValidationStatus(v string) *ValidationRecordUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableValidationStatus(v *string) *ValidationRecordUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ValidationRecordUpdate) SetConfidenceScore(v int) *ValidationRecordUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableConfidenceScore(v *int) *ValidationRecordUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ValidationRecordUpdate) AddConfidenceScore(v int) *ValidationRecordUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ValidationRecordUpdate) SetReasoning(v string) *ValidationRecordUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableReasoning(v *string) *ValidationRecordUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ValidationRecordUpdate) ClearReasoning() *ValidationRecordUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationRecordUpdate) SetCreatedAt(v time.Time) *ValidationRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationRecordUpdate) SetNillableCreatedAt(v *time.Time) *ValidationRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationRecordUpdate) SetUpdatedAt(v time.Time) *ValidationRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_u *ValidationRecordUpdate) SetSession(v *ExtractionSession) *ValidationRecordUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ValidationRecordMutation object of the builder.
func (_u *ValidationRecordUpdate) Mutation() *ValidationRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (_u *ValidationRecordUpdate) ClearSession() *ValidationRecordUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRecordUpdate) check() error {
	if v, ok := _u.mutation.RecordIndex(); ok {
		if err := validationrecord.RecordIndexValidator(v); err != nil {
			return &ValidationError{Name: "record_index", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.record_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := validationrecord.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := validationrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := validationrecord.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationRecord.session"`)
	}
	return nil
}

func (_u *ValidationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrecord.Table, validationrecord.Columns, sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldID(); ok {
		_spec.SetField(validationrecord.FieldFieldID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CollectionID(); ok {
		_spec.SetField(validationrecord.FieldCollectionID, field.TypeUUID, value)
	}
	if _u.mutation.CollectionIDCleared() {
		_spec.ClearField(validationrecord.FieldCollectionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecordIndex(); ok {
		_spec.SetField(validationrecord.FieldRecordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordIndex(); ok {
		_spec.AddField(validationrecord.FieldRecordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(validationrecord.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(validationrecord.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(validationrecord.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(validationrecord.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(validationrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(validationrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(validationrecord.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(validationrecord.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationrecord.SessionTable,
			Columns: []string{validationrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationrecord.SessionTable,
			Columns: []string{validationrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationRecordUpdateOne is the builder for updating a single ValidationRecord entity.
type ValidationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ValidationRecordUpdateOne) SetSessionID(v uuid.UUID) *ValidationRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableSessionID(v *uuid.UUID) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFieldID sets the "field_id" field.
func (_u *ValidationRecordUpdateOne) SetFieldID(v uuid.UUID) *ValidationRecordUpdateOne {
	_u.mutation.SetFieldID(v)
	return _u
}

// SetNillableFieldID sets the "field_id" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableFieldID(v *uuid.UUID) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetFieldID(*v)
	}
	return _u
}

// SetCollectionID sets the "collection_id" field.
func (_u *ValidationRecordUpdateOne) SetCollectionID(v uuid.UUID) *ValidationRecordUpdateOne {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableCollectionID(v *uuid.UUID) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// ClearCollectionID clears the value of the "collection_id" field.
func (_u *ValidationRecordUpdateOne) ClearCollectionID() *ValidationRecordUpdateOne {
	_u.mutation.ClearCollectionID()
	return _u
}

// SetRecordIndex sets the "record_index" field.
func (_u *ValidationRecordUpdateOne) SetRecordIndex(v int) *ValidationRecordUpdateOne {
	_u.mutation.ResetRecordIndex()
	_u.mutation.SetRecordIndex(v)
	return _u
}

// SetNillableRecordIndex sets the "record_index" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableRecordIndex(v *int) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetRecordIndex(*v)
	}
	return _u
}

// AddRecordIndex adds value to the "record_index" field.
func (_u *ValidationRecordUpdateOne) AddRecordIndex(v int) *ValidationRecordUpdateOne {
	_u.mutation.AddRecordIndex(v)
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ValidationRecordUpdateOne) SetFieldName(v string) *ValidationRecordUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableFieldName(v *string) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ValidationRecordUpdateOne) SetExtractedValue(v string) *ValidationRecordUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableExtractedValue(v *string) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ValidationRecordUpdateOne) ClearExtractedValue() *ValidationRecordUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ValidationRecordUpdateOne) SetValidationStatus(v string) *ValidationRecordUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableValidationStatus(v *string) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ValidationRecordUpdateOne) SetConfidenceScore(v int) *ValidationRecordUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableConfidenceScore(v *int) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ValidationRecordUpdateOne) AddConfidenceScore(v int) *ValidationRecordUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ValidationRecordUpdateOne) SetReasoning(v string) *ValidationRecordUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableReasoning(v *string) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ValidationRecordUpdateOne) ClearReasoning() *ValidationRecordUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ValidationRecordUpdateOne) SetCreatedAt(v time.Time) *ValidationRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ValidationRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ValidationRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ValidationRecordUpdateOne) SetUpdatedAt(v time.Time) *ValidationRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_u *ValidationRecordUpdateOne) SetSession(v *ExtractionSession) *ValidationRecordUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the ValidationRecordMutation object of the builder.
func (_u *ValidationRecordUpdateOne) Mutation() *ValidationRecordMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (_u *ValidationRecordUpdateOne) ClearSession() *ValidationRecordUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the ValidationRecordUpdate builder.
func (_u *ValidationRecordUpdateOne) Where(ps ...predicate.ValidationRecord) *ValidationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationRecordUpdateOne) Select(field string, fields ...string) *ValidationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationRecord entity.
func (_u *ValidationRecordUpdateOne) Save(ctx context.Context) (*ValidationRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationRecordUpdateOne) SaveX(ctx context.Context) *ValidationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ValidationRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := validationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RecordIndex(); ok {
		if err := validationrecord.RecordIndexValidator(v); err != nil {
			return &ValidationError{Name: "record_index", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.record_index": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FieldName(); ok {
		if err := validationrecord.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.field_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := validationrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := validationrecord.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationRecord.session"`)
	}
	return nil
}

func (_u *ValidationRecordUpdateOne) sqlSave(ctx context.Context) (_node *ValidationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationrecord.Table, validationrecord.Columns, sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationrecord.FieldID)
		for _, f := range fields {
			if !validationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldID(); ok {
		_spec.SetField(validationrecord.FieldFieldID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CollectionID(); ok {
		_spec.SetField(validationrecord.FieldCollectionID, field.TypeUUID, value)
	}
	if _u.mutation.CollectionIDCleared() {
		_spec.ClearField(validationrecord.FieldCollectionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecordIndex(); ok {
		_spec.SetField(validationrecord.FieldRecordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordIndex(); ok {
		_spec.AddField(validationrecord.FieldRecordIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(validationrecord.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(validationrecord.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(validationrecord.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(validationrecord.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(validationrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(validationrecord.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(validationrecord.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(validationrecord.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(validationrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationrecord.SessionTable,
			Columns: []string{validationrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationrecord.SessionTable,
			Columns: []string{validationrecord.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ValidationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
