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
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// ExtractionSessionCreate is the builder for creating a ExtractionSession entity.
type ExtractionSessionCreate struct {
	config
	mutation *ExtractionSessionMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ExtractionSessionCreate) SetProjectID(v uuid.UUID) *ExtractionSessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExtractionSessionCreate) SetName(v string) *ExtractionSessionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableName(v *string) *ExtractionSessionCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionSessionCreate) SetStatus(v string) *ExtractionSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableStatus(v *string) *ExtractionSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProgressMessage sets the "progress_message" field.
func (_c *ExtractionSessionCreate) SetProgressMessage(v string) *ExtractionSessionCreate {
	_c.mutation.SetProgressMessage(v)
	return _c
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableProgressMessage(v *string) *ExtractionSessionCreate {
	if v != nil {
		_c.SetProgressMessage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionSessionCreate) SetErrorMessage(v string) *ExtractionSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableErrorMessage(v *string) *ExtractionSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionSessionCreate) SetModelName(v string) *ExtractionSessionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableModelName(v *string) *ExtractionSessionCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionSessionCreate) SetStartedAt(v time.Time) *ExtractionSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableStartedAt(v *time.Time) *ExtractionSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionSessionCreate) SetFinishedAt(v time.Time) *ExtractionSessionCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableFinishedAt(v *time.Time) *ExtractionSessionCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionSessionCreate) SetCreatedAt(v time.Time) *ExtractionSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionSessionCreate) SetUpdatedAt(v time.Time) *ExtractionSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionSessionCreate) SetID(v uuid.UUID) *ExtractionSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionSessionCreate) SetNillableID(v *uuid.UUID) *ExtractionSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ExtractionSessionCreate) SetProject(v *Project) *ExtractionSessionCreate {
	return _c.SetProjectID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_c *ExtractionSessionCreate) AddDocumentIDs(ids ...uuid.UUID) *ExtractionSessionCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_c *ExtractionSessionCreate) AddDocuments(v ...*SessionDocument) *ExtractionSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the ValidationRecord entity by IDs.
func (_c *ExtractionSessionCreate) AddRecordIDs(ids ...uuid.UUID) *ExtractionSessionCreate {
	_c.mutation.AddRecordIDs(ids...)
	return _c
}

// AddRecords adds the "records" edges to the ValidationRecord entity.
func (_c *ExtractionSessionCreate) AddRecords(v ...*ValidationRecord) *ExtractionSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordIDs(ids...)
}

// Mutation returns the ExtractionSessionMutation object of the builder.
func (_c *ExtractionSessionCreate) Mutation() *ExtractionSessionMutation {
	return _c.mutation
}

// Save creates the ExtractionSession in the database.
func (_c *ExtractionSessionCreate) Save(ctx context.Context) (*ExtractionSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionSessionCreate) SaveX(ctx context.Context) *ExtractionSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionSessionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ExtractionSession.project_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionSession.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ExtractionSession.project"`)}
	}
	return nil
}

func (_c *ExtractionSessionCreate) sqlSave(ctx context.Context) (*ExtractionSession, error) {
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

func (_c *ExtractionSessionCreate) createSpec() (*ExtractionSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionsession.Table, sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extractionsession.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProgressMessage(); ok {
		_spec.SetField(extractionsession.FieldProgressMessage, field.TypeString, value)
		_node.ProgressMessage = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionsession.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionsession.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionsession.ProjectTable,
			Columns: []string{extractionsession.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionSessionCreateBulk is the builder for creating many ExtractionSession entities in bulk.
type ExtractionSessionCreateBulk struct {
	config
	err      error
	builders []*ExtractionSessionCreate
}

// Save creates the ExtractionSession entities in the database.
func (_c *ExtractionSessionCreateBulk) Save(ctx context.Context) ([]*ExtractionSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionSessionMutation)
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
func (_c *ExtractionSessionCreateBulk) SaveX(ctx context.Context) []*ExtractionSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
