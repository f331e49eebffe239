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
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// KnowledgeDocumentUpdate is the builder for updating KnowledgeDocument entities.
type KnowledgeDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeDocumentMutation
}

// Where appends a list predicates to the KnowledgeDocumentUpdate builder.
func (_u *KnowledgeDocumentUpdate) Where(ps ...predicate.KnowledgeDocument) *KnowledgeDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *KnowledgeDocumentUpdate) SetProjectID(v uuid.UUID) *KnowledgeDocumentUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdate) SetNillableProjectID(v *uuid.UUID) *KnowledgeDocumentUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *KnowledgeDocumentUpdate) SetDisplayName(v string) *KnowledgeDocumentUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdate) SetNillableDisplayName(v *string) *KnowledgeDocumentUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeDocumentUpdate) SetContent(v string) *KnowledgeDocumentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdate) SetNillableContent(v *string) *KnowledgeDocumentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTargetField sets the "target_field" field.
func (_u *KnowledgeDocumentUpdate) SetTargetField(v string) *KnowledgeDocumentUpdate {
	_u.mutation.SetTargetField(v)
	return _u
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdate) SetNillableTargetField(v *string) *KnowledgeDocumentUpdate {
	if v != nil {
		_u.SetTargetField(*v)
	}
	return _u
}

// ClearTargetField clears the value of the "target_field" field.
func (_u *KnowledgeDocumentUpdate) ClearTargetField() *KnowledgeDocumentUpdate {
	_u.mutation.ClearTargetField()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KnowledgeDocumentUpdate) SetCreatedAt(v time.Time) *KnowledgeDocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdate) SetNillableCreatedAt(v *time.Time) *KnowledgeDocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *KnowledgeDocumentUpdate) SetProject(v *Project) *KnowledgeDocumentUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the KnowledgeDocumentMutation object of the builder.
func (_u *KnowledgeDocumentUpdate) Mutation() *KnowledgeDocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *KnowledgeDocumentUpdate) ClearProject() *KnowledgeDocumentUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeDocumentUpdate) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := knowledgedocument.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgedocument.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.content": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeDocument.project"`)
	}
	return nil
}

func (_u *KnowledgeDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgedocument.Table, knowledgedocument.Columns, sqlgraph.NewFieldSpec(knowledgedocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(knowledgedocument.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgedocument.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetField(); ok {
		_spec.SetField(knowledgedocument.FieldTargetField, field.TypeString, value)
	}
	if _u.mutation.TargetFieldCleared() {
		_spec.ClearField(knowledgedocument.FieldTargetField, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgedocument.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgedocument.ProjectTable,
			Columns: []string{knowledgedocument.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgedocument.ProjectTable,
			Columns: []string{knowledgedocument.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeDocumentUpdateOne is the builder for updating a single KnowledgeDocument entity.
type KnowledgeDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeDocumentMutation
}

// SetProjectID sets the "project_id" field.
func (_u *KnowledgeDocumentUpdateOne) SetProjectID(v uuid.UUID) *KnowledgeDocumentUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdateOne) SetNillableProjectID(v *uuid.UUID) *KnowledgeDocumentUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *KnowledgeDocumentUpdateOne) SetDisplayName(v string) *KnowledgeDocumentUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdateOne) SetNillableDisplayName(v *string) *KnowledgeDocumentUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *KnowledgeDocumentUpdateOne) SetContent(v string) *KnowledgeDocumentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdateOne) SetNillableContent(v *string) *KnowledgeDocumentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetTargetField sets the "target_field" field.
func (_u *KnowledgeDocumentUpdateOne) SetTargetField(v string) *KnowledgeDocumentUpdateOne {
	_u.mutation.SetTargetField(v)
	return _u
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdateOne) SetNillableTargetField(v *string) *KnowledgeDocumentUpdateOne {
	if v != nil {
		_u.SetTargetField(*v)
	}
	return _u
}

// ClearTargetField clears the value of the "target_field" field.
func (_u *KnowledgeDocumentUpdateOne) ClearTargetField() *KnowledgeDocumentUpdateOne {
	_u.mutation.ClearTargetField()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *KnowledgeDocumentUpdateOne) SetCreatedAt(v time.Time) *KnowledgeDocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *KnowledgeDocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *KnowledgeDocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *KnowledgeDocumentUpdateOne) SetProject(v *Project) *KnowledgeDocumentUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the KnowledgeDocumentMutation object of the builder.
func (_u *KnowledgeDocumentUpdateOne) Mutation() *KnowledgeDocumentMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *KnowledgeDocumentUpdateOne) ClearProject() *KnowledgeDocumentUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the KnowledgeDocumentUpdate builder.
func (_u *KnowledgeDocumentUpdateOne) Where(ps ...predicate.KnowledgeDocument) *KnowledgeDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeDocumentUpdateOne) Select(field string, fields ...string) *KnowledgeDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeDocument entity.
func (_u *KnowledgeDocumentUpdateOne) Save(ctx context.Context) (*KnowledgeDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeDocumentUpdateOne) SaveX(ctx context.Context) *KnowledgeDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DisplayName(); ok {
		if err := knowledgedocument.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.display_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := knowledgedocument.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.content": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeDocument.project"`)
	}
	return nil
}

func (_u *KnowledgeDocumentUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgedocument.Table, knowledgedocument.Columns, sqlgraph.NewFieldSpec(knowledgedocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgedocument.FieldID)
		for _, f := range fields {
			if !knowledgedocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgedocument.FieldID {
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
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(knowledgedocument.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(knowledgedocument.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetField(); ok {
		_spec.SetField(knowledgedocument.FieldTargetField, field.TypeString, value)
	}
	if _u.mutation.TargetFieldCleared() {
		_spec.ClearField(knowledgedocument.FieldTargetField, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgedocument.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgedocument.ProjectTable,
			Columns: []string{knowledgedocument.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgedocument.ProjectTable,
			Columns: []string{knowledgedocument.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KnowledgeDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgedocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
