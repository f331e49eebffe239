// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// CollectionPropertyUpdate is the builder for updating CollectionProperty entities.
type CollectionPropertyUpdate struct {
	config
	hooks    []Hook
	mutation *CollectionPropertyMutation
}

// Where appends a list predicates to the CollectionPropertyUpdate builder.
func (_u *CollectionPropertyUpdate) Where(ps ...predicate.CollectionProperty) *CollectionPropertyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCollectionID sets the "collection_id" field.
func (_u *CollectionPropertyUpdate) SetCollectionID(v uuid.UUID) *CollectionPropertyUpdate {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillableCollectionID(v *uuid.UUID) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CollectionPropertyUpdate) SetName(v string) *CollectionPropertyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillableName(v *string) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *CollectionPropertyUpdate) SetPropertyType(v string) *CollectionPropertyUpdate {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillablePropertyType(v *string) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CollectionPropertyUpdate) SetDescription(v string) *CollectionPropertyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillableDescription(v *string) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CollectionPropertyUpdate) ClearDescription() *CollectionPropertyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetChoices sets the "choices" field.
func (_u *CollectionPropertyUpdate) SetChoices(v []string) *CollectionPropertyUpdate {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *CollectionPropertyUpdate) AppendChoices(v []string) *CollectionPropertyUpdate {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *CollectionPropertyUpdate) ClearChoices() *CollectionPropertyUpdate {
	_u.mutation.ClearChoices()
	return _u
}

// SetRequired sets the "required" field.
func (_u *CollectionPropertyUpdate) SetRequired(v bool) *CollectionPropertyUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillableRequired(v *bool) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CollectionPropertyUpdate) SetPosition(v int) *CollectionPropertyUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CollectionPropertyUpdate) SetNillablePosition(v *int) *CollectionPropertyUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CollectionPropertyUpdate) AddPosition(v int) *CollectionPropertyUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCollection sets the "collection" edge to the Collection entity.
func (_u *CollectionPropertyUpdate) SetCollection(v *Collection) *CollectionPropertyUpdate {
	return _u.SetCollectionID(v.ID)
}

// Mutation returns the CollectionPropertyMutation object of the builder.
func (_u *CollectionPropertyUpdate) Mutation() *CollectionPropertyMutation {
	return _u.mutation
}

// ClearCollection clears the "collection" edge to the Collection entity.
func (_u *CollectionPropertyUpdate) ClearCollection() *CollectionPropertyUpdate {
	_u.mutation.ClearCollection()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CollectionPropertyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionPropertyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CollectionPropertyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionPropertyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionPropertyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := collectionproperty.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyType(); ok {
		if err := collectionproperty.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.property_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := collectionproperty.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.position": %w`, err)}
		}
	}
	if _u.mutation.CollectionCleared() && len(_u.mutation.CollectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CollectionProperty.collection"`)
	}
	return nil
}

func (_u *CollectionPropertyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionproperty.Table, collectionproperty.Columns, sqlgraph.NewFieldSpec(collectionproperty.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(collectionproperty.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(collectionproperty.FieldPropertyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(collectionproperty.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(collectionproperty.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(collectionproperty.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, collectionproperty.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(collectionproperty.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(collectionproperty.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(collectionproperty.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(collectionproperty.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.CollectionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CollectionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionproperty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CollectionPropertyUpdateOne is the builder for updating a single CollectionProperty entity.
type CollectionPropertyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CollectionPropertyMutation
}

// SetCollectionID sets the "collection_id" field.
func (_u *CollectionPropertyUpdateOne) SetCollectionID(v uuid.UUID) *CollectionPropertyUpdateOne {
	_u.mutation.SetCollectionID(v)
	return _u
}

// SetNillableCollectionID sets the "collection_id" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillableCollectionID(v *uuid.UUID) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetCollectionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CollectionPropertyUpdateOne) SetName(v string) *CollectionPropertyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillableName(v *string) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPropertyType sets the "property_type" field.
func (_u *CollectionPropertyUpdateOne) SetPropertyType(v string) *CollectionPropertyUpdateOne {
	_u.mutation.SetPropertyType(v)
	return _u
}

// SetNillablePropertyType sets the "property_type" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillablePropertyType(v *string) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetPropertyType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CollectionPropertyUpdateOne) SetDescription(v string) *CollectionPropertyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillableDescription(v *string) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CollectionPropertyUpdateOne) ClearDescription() *CollectionPropertyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetChoices sets the "choices" field.
func (_u *CollectionPropertyUpdateOne) SetChoices(v []string) *CollectionPropertyUpdateOne {
	_u.mutation.SetChoices(v)
	return _u
}

// AppendChoices appends value to the "choices" field.
func (_u *CollectionPropertyUpdateOne) AppendChoices(v []string) *CollectionPropertyUpdateOne {
	_u.mutation.AppendChoices(v)
	return _u
}

// ClearChoices clears the value of the "choices" field.
func (_u *CollectionPropertyUpdateOne) ClearChoices() *CollectionPropertyUpdateOne {
	_u.mutation.ClearChoices()
	return _u
}

// SetRequired sets the "required" field.
func (_u *CollectionPropertyUpdateOne) SetRequired(v bool) *CollectionPropertyUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillableRequired(v *bool) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CollectionPropertyUpdateOne) SetPosition(v int) *CollectionPropertyUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CollectionPropertyUpdateOne) SetNillablePosition(v *int) *CollectionPropertyUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CollectionPropertyUpdateOne) AddPosition(v int) *CollectionPropertyUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCollection sets the "collection" edge to the Collection entity.
func (_u *CollectionPropertyUpdateOne) SetCollection(v *Collection) *CollectionPropertyUpdateOne {
	return _u.SetCollectionID(v.ID)
}

// Mutation returns the CollectionPropertyMutation object of the builder.
func (_u *CollectionPropertyUpdateOne) Mutation() *CollectionPropertyMutation {
	return _u.mutation
}

// ClearCollection clears the "collection" edge to the Collection entity.
func (_u *CollectionPropertyUpdateOne) ClearCollection() *CollectionPropertyUpdateOne {
	_u.mutation.ClearCollection()
	return _u
}

// Where appends a list predicates to the CollectionPropertyUpdate builder.
func (_u *CollectionPropertyUpdateOne) Where(ps ...predicate.CollectionProperty) *CollectionPropertyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CollectionPropertyUpdateOne) Select(field string, fields ...string) *CollectionPropertyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CollectionProperty entity.
func (_u *CollectionPropertyUpdateOne) Save(ctx context.Context) (*CollectionProperty, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CollectionPropertyUpdateOne) SaveX(ctx context.Context) *CollectionProperty {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CollectionPropertyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CollectionPropertyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CollectionPropertyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := collectionproperty.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PropertyType(); ok {
		if err := collectionproperty.PropertyTypeValidator(v); err != nil {
			return &ValidationError{Name: "property_type", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.property_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Position(); ok {
		if err := collectionproperty.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CollectionProperty.position": %w`, err)}
		}
	}
	if _u.mutation.CollectionCleared() && len(_u.mutation.CollectionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CollectionProperty.collection"`)
	}
	return nil
}

func (_u *CollectionPropertyUpdateOne) sqlSave(ctx context.Context) (_node *CollectionProperty, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(collectionproperty.Table, collectionproperty.Columns, sqlgraph.NewFieldSpec(collectionproperty.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CollectionProperty.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, collectionproperty.FieldID)
		for _, f := range fields {
			if !collectionproperty.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != collectionproperty.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(collectionproperty.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PropertyType(); ok {
		_spec.SetField(collectionproperty.FieldPropertyType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(collectionproperty.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(collectionproperty.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Choices(); ok {
		_spec.SetField(collectionproperty.FieldChoices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChoices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, collectionproperty.FieldChoices, value)
		})
	}
	if _u.mutation.ChoicesCleared() {
		_spec.ClearField(collectionproperty.FieldChoices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(collectionproperty.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(collectionproperty.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(collectionproperty.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.CollectionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CollectionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CollectionProperty{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{collectionproperty.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
