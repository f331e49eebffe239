// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// ValidationRecordCreate is the builder for creating a ValidationRecord entity.
type ValidationRecordCreate struct {
	config
	mutation *ValidationRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ValidationRecordCreate) SetSessionID(v uuid.UUID) *ValidationRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFieldID sets the "field_id" field.
func (_c *ValidationRecordCreate) SetFieldID(v uuid.UUID) *ValidationRecordCreate {
	_c.mutation.SetFieldID(v)
	return _c
}

// SetCollectionID sets the "collection_id" field.
func (_c *ValidationRecordCreate) SetCollectionID(v uuid.UUID) *ValidationRecordCreate {
	_c.mutation.SetCollectionID(v)
	return _c
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableCollectionID(v *uuid.UUID) *ValidationRecordCreate {
	if v != nil {
		_c.SetCollectionID(*v)
	}
	return _c
}

// SetRecordIndex sets the "record_index" field.
func (_c *ValidationRecordCreate) SetRecordIndex(v int) *ValidationRecordCreate {
	_c.mutation.SetRecordIndex(v)
	return _c
}

// SetNillableRecordIndex sets the "record_index" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableRecordIndex(v *int) *ValidationRecordCreate {
	if v != nil {
		_c.SetRecordIndex(*v)
	}
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ValidationRecordCreate) SetFieldName(v string) *ValidationRecordCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ValidationRecordCreate) SetExtractedValue(v string) *ValidationRecordCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableExtractedValue(v *string) *ValidationRecordCreate {
	if v != nil {
		_c.SetExtractedValue(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *ValidationRecordCreate) SetValidationStatus(v string) *ValidationRecordCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableValidationStatus(v *string) *ValidationRecordCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ValidationRecordCreate) SetConfidenceScore(v int) *ValidationRecordCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableConfidenceScore(v *int) *ValidationRecordCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ValidationRecordCreate) SetReasoning(v string) *ValidationRecordCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableReasoning(v *string) *ValidationRecordCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationRecordCreate) SetCreatedAt(v time.Time) *ValidationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableCreatedAt(v *time.Time) *ValidationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ValidationRecordCreate) SetUpdatedAt(v time.Time) *ValidationRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableUpdatedAt(v *time.Time) *ValidationRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationRecordCreate) SetID(v uuid.UUID) *ValidationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ValidationRecordCreate) SetNillableID(v *uuid.UUID) *ValidationRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_c *ValidationRecordCreate) SetSession(v *ExtractionSession) *ValidationRecordCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the ValidationRecordMutation object of the builder.
func (_c *ValidationRecordCreate) Mutation() *ValidationRecordMutation {
	return _c.mutation
}

// Save creates the ValidationRecord in the database.
func (_c *ValidationRecordCreate) Save(ctx context.Context) (*ValidationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationRecordCreate) SaveX(ctx context.Context) *ValidationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationRecordCreate) defaults() {
	if _, ok := _c.mutation.RecordIndex(); !ok {
		v := validationrecord.DefaultRecordIndex
		_c.mutation.SetRecordIndex(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := validationrecord.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := validationrecord.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := validationrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := validationrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ValidationRecord.session_id"`)}
	}
	if _, ok := _c.mutation.FieldID(); !ok {
		return &ValidationError{Name: "field_id", err: errors.New(`ent: missing required field "ValidationRecord.field_id"`)}
	}
	if _, ok := _c.mutation.RecordIndex(); !ok {
		return &ValidationError{Name: "record_index", err: errors.New(`ent: missing required field "ValidationRecord.record_index"`)}
	}
	if v, ok := _c.mutation.RecordIndex(); ok {
		if err := validationrecord.RecordIndexValidator(v); err != nil {
			return &ValidationError{Name: "record_index", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.record_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ValidationRecord.field_name"`)}
	}
	if v, ok := _c.mutation.FieldName(); ok {
		if err := validationrecord.FieldNameValidator(v); err != nil {
			return &ValidationError{Name: "field_name", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.field_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "ValidationRecord.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := validationrecord.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "ValidationRecord.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := validationrecord.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "ValidationRecord.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ValidationRecord.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ValidationRecord.session"`)}
	}
	return nil
}

func (_c *ValidationRecordCreate) sqlSave(ctx context.Context) (*ValidationRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationRecordCreate) createSpec() (*ValidationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationrecord.Table, sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FieldID(); ok {
		_spec.SetField(validationrecord.FieldFieldID, field.TypeUUID, value)
		_node.FieldID = value
	}
	if value, ok := _c.mutation.CollectionID(); ok {
		_spec.SetField(validationrecord.FieldCollectionID, field.TypeUUID, value)
		_node.CollectionID = &value
	}
	if value, ok := _c.mutation.RecordIndex(); ok {
		_spec.SetField(validationrecord.FieldRecordIndex, field.TypeInt, value)
		_node.RecordIndex = value
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(validationrecord.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(validationrecord.FieldExtractedValue, field.TypeString, value)
		_node.ExtractedValue = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(validationrecord.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(validationrecord.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(validationrecord.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(validationrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
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
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ValidationRecordCreateBulk is the builder for creating many ValidationRecord entities in bulk.
type ValidationRecordCreateBulk struct {
	config
	err      error
	builders []*ValidationRecordCreate
}

// Save creates the ValidationRecord entities in the database.
func (_c *ValidationRecordCreateBulk) Save(ctx context.Context) ([]*ValidationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ValidationRecordCreateBulk) SaveX(ctx context.Context) []*ValidationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
