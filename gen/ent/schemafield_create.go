// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/schemafield"
	"github.com/google/uuid"
)

// SchemaFieldCreate is the builder for creating a SchemaField entity.
type SchemaFieldCreate struct {
	config
	mutation *SchemaFieldMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *SchemaFieldCreate) SetProjectID(v uuid.UUID) *SchemaFieldCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SchemaFieldCreate) SetName(v string) *SchemaFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFieldType sets the "field_type" field.
func (_c *SchemaFieldCreate) SetFieldType(v string) *SchemaFieldCreate {
	_c.mutation.SetFieldType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SchemaFieldCreate) SetDescription(v string) *SchemaFieldCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableDescription(v *string) *SchemaFieldCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetChoices sets the "choices" field.
func (_c *SchemaFieldCreate) SetChoices(v []string) *SchemaFieldCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *SchemaFieldCreate) SetRequired(v bool) *SchemaFieldCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableRequired(v *bool) *SchemaFieldCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *SchemaFieldCreate) SetPosition(v int) *SchemaFieldCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillablePosition(v *int) *SchemaFieldCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchemaFieldCreate) SetCreatedAt(v time.Time) *SchemaFieldCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableCreatedAt(v *time.Time) *SchemaFieldCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchemaFieldCreate) SetID(v uuid.UUID) *SchemaFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SchemaFieldCreate) SetNillableID(v *uuid.UUID) *SchemaFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SchemaFieldCreate) SetProject(v *Project) *SchemaFieldCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the SchemaFieldMutation object of the builder.
func (_c *SchemaFieldCreate) Mutation() *SchemaFieldMutation {
	return _c.mutation
}

// Save creates the SchemaField in the database.
func (_c *SchemaFieldCreate) Save(ctx context.Context) (*SchemaField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchemaFieldCreate) SaveX(ctx context.Context) *SchemaField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchemaFieldCreate) defaults() {
	if _, ok := _c.mutation.Required(); !ok {
		v := schemafield.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := schemafield.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schemafield.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := schemafield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchemaFieldCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "SchemaField.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SchemaField.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := schemafield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SchemaField.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FieldType(); !ok {
		return &ValidationError{Name: "field_type", err: errors.New(`ent: missing required field "SchemaField.field_type"`)}
	}
	if v, ok := _c.mutation.FieldType(); ok {
		if err := schemafield.FieldTypeValidator(v); err != nil {
			return &ValidationError{Name: "field_type", err: fmt.Errorf(`ent: validator failed for field "SchemaField.field_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "SchemaField.required"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SchemaField.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := schemafield.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "SchemaField.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SchemaField.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "SchemaField.project"`)}
	}
	return nil
}

func (_c *SchemaFieldCreate) sqlSave(ctx context.Context) (*SchemaField, error) {
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

func (_c *SchemaFieldCreate) createSpec() (*SchemaField, *sqlgraph.CreateSpec) {
	var (
		_node = &SchemaField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schemafield.Table, sqlgraph.NewFieldSpec(schemafield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(schemafield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FieldType(); ok {
		_spec.SetField(schemafield.FieldFieldType, field.TypeString, value)
		_node.FieldType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(schemafield.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(schemafield.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(schemafield.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(schemafield.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schemafield.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schemafield.ProjectTable,
			Columns: []string{schemafield.ProjectColumn},
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
	return _node, _spec
}

// SchemaFieldCreateBulk is the builder for creating many SchemaField entities in bulk.
type SchemaFieldCreateBulk struct {
	config
	err      error
	builders []*SchemaFieldCreate
}

// Save creates the SchemaField entities in the database.
func (_c *SchemaFieldCreateBulk) Save(ctx context.Context) ([]*SchemaField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchemaField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchemaFieldMutation)
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
func (_c *SchemaFieldCreateBulk) SaveX(ctx context.Context) []*SchemaField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchemaFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchemaFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
