// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/predicate"
)

// KnowledgeDocumentDelete is the builder for deleting a KnowledgeDocument entity.
type KnowledgeDocumentDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeDocumentMutation
}

// Where appends a list predicates to the KnowledgeDocumentDelete builder.
func (_d *KnowledgeDocumentDelete) Where(ps ...predicate.KnowledgeDocument) *KnowledgeDocumentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeDocumentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeDocumentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeDocumentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgedocument.Table, sqlgraph.NewFieldSpec(knowledgedocument.FieldID, field.TypeUUID))
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

// KnowledgeDocumentDeleteOne is the builder for deleting a single KnowledgeDocument entity.
type KnowledgeDocumentDeleteOne struct {
	_d *KnowledgeDocumentDelete
}

// Where appends a list predicates to the KnowledgeDocumentDelete builder.
func (_d *KnowledgeDocumentDeleteOne) Where(ps ...predicate.KnowledgeDocument) *KnowledgeDocumentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeDocumentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgedocument.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeDocumentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
