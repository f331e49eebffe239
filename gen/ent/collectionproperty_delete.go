// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/predicate"
)

// CollectionPropertyDelete is the builder for deleting a CollectionProperty entity.
type CollectionPropertyDelete struct {
	config
	hooks    []Hook
	mutation *CollectionPropertyMutation
}

// Where appends a list predicates to the CollectionPropertyDelete builder.
func (_d *CollectionPropertyDelete) Where(ps ...predicate.CollectionProperty) *CollectionPropertyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CollectionPropertyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollectionPropertyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CollectionPropertyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(collectionproperty.Table, sqlgraph.NewFieldSpec(collectionproperty.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CollectionPropertyDeleteOne is the builder for deleting a single CollectionProperty entity.
type CollectionPropertyDeleteOne struct {
	_d *CollectionPropertyDelete
}

// Where appends a list predicates to the CollectionPropertyDelete builder.
func (_d *CollectionPropertyDeleteOne) Where(ps ...predicate.CollectionProperty) *CollectionPropertyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CollectionPropertyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{collectionproperty.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CollectionPropertyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
