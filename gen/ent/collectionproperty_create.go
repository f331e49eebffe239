// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/google/uuid"
)

// CollectionPropertyCreate is the builder for creating a CollectionProperty entity.
type CollectionPropertyCreate struct {
	config
	mutation *CollectionPropertyMutation
	hooks    []Hook
}

// SetCollectionID sets the "collection_id" field.
func (_c *CollectionPropertyCreate) SetCollectionID(v uuid.UUID) *CollectionPropertyCreate {
	_c.mutation.SetCollectionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CollectionPropertyCreate) SetName(v string) *CollectionPropertyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPropertyType sets the "property_type" field.
func (_c *CollectionPropertyCreate) SetPropertyType(v string) *CollectionPropertyCreate {
	_c.mutation.SetPropertyType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CollectionPropertyCreate) SetDescription(v string) *CollectionPropertyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CollectionPropertyCreate) SetNillableDescription(v *string) *CollectionPropertyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetChoices sets the "choices" field.
func (_c *CollectionPropertyCreate) SetChoices(v []string) *CollectionPropertyCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *CollectionPropertyCreate) SetRequired(v bool) *CollectionPropertyCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *CollectionPropertyCreate) SetNillableRequired(v *bool) *CollectionPropertyCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *CollectionPropertyCreate) SetPosition(v int) *CollectionPropertyCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *CollectionPropertyCreate) SetNillablePosition(v *int) *CollectionPropertyCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CollectionPropertyCreate) SetID(v uuid.UUID) *CollectionPropertyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CollectionPropertyCreate) SetNillableID(v *uuid.UUID) *CollectionPropertyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCollection sets the "collection" edge to the Collection entity.
func (_c *CollectionPropertyCreate) SetCollection(v *Collection) *CollectionPropertyCreate {
	return _c.SetCollectionID(v.ID)
}

// Mutation returns the CollectionPropertyMutation object of the builder.
func (_c *CollectionPropertyCreate) Mutation() *CollectionPropertyMutation {
	return _c.mutation
}

// Save creates the CollectionProperty in the database.
func (_c *CollectionPropertyCreate) Save(ctx context.Context) (*CollectionProperty, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CollectionPropertyCreate) SaveX(ctx context.Context) *CollectionProperty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionPropertyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionPropertyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CollectionPropertyCreate) defaults() {
	if _, ok := _c.mutation.Required(); !ok {
		v := collectionproperty.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := collectionproperty.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := collectionproperty.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CollectionPropertyCreate) check() error {
	if _, ok := _c.mutation.CollectionID(); !ok {
		return &ValidationError{Name: "collection_id", err: errors.New(`ent: missing required field "CollectionProperty.collection_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "CollectionProperty.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := collectionproperty.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PropertyType(); !ok {
		return &ValidationError{Name: "property_type", err: errors.New(`ent: missing required field "CollectionProperty.property_type"`)}
	}
	if v, ok := _c.mutation.PropertyType(); ok {
		if err := collectionproperty.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.property_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "CollectionProperty.required"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CollectionProperty.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := collectionproperty.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.position": %w`, err)}
		}
	}
	if len(_c.mutation.CollectionIDs()) == 0 {
		return &ValidationError{Name: "collection", err: errors.New(`ent: missing required edge "CollectionProperty.collection"`)}
	}
	return nil
}

func (_c *CollectionPropertyCreate) sqlSave(ctx context.Context) (*CollectionProperty, error) {
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

func (_c *CollectionPropertyCreate) createSpec() (*CollectionProperty, *sqlgraph.CreateSpec) {
	var (
		_node = &CollectionProperty{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(collectionproperty.Table, sqlgraph.NewFieldSpec(collectionproperty.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(collectionproperty.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PropertyType(); ok {
		_spec.SetField(collectionproperty.FieldPropertyType, field.TypeString, value)
		_node.PropertyType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(collectionproperty.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(collectionproperty.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(collectionproperty.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(collectionproperty.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.CollectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   collectionproperty.CollectionTable,
			Columns: []string{collectionproperty.CollectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(collection.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CollectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CollectionPropertyCreateBulk is the builder for creating many CollectionProperty entities in bulk.
type CollectionPropertyCreateBulk struct {
	config
	err      error
	builders []*CollectionPropertyCreate
}

// Save creates the CollectionProperty entities in the database.
func (_c *CollectionPropertyCreateBulk) Save(ctx context.Context) ([]*CollectionProperty, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CollectionProperty, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CollectionPropertyMutation)
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
func (_c *CollectionPropertyCreateBulk) SaveX(ctx context.Context) []*CollectionProperty {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CollectionPropertyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CollectionPropertyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
