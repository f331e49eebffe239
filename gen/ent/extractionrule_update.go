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
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// ExtractionRuleUpdate is the builder for updating ExtractionRule entities.
type ExtractionRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdate) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionRuleUpdate) SetProjectID(v uuid.UUID) *ExtractionRuleUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableProjectID(v *uuid.UUID) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ExtractionRuleUpdate) SetRuleName(v string) *ExtractionRuleUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableRuleName(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetTargetField sets the "target_field" field.
func (_u *ExtractionRuleUpdate) SetTargetField(v string) *ExtractionRuleUpdate {
	_u.mutation.SetTargetField(v)
	return _u
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableTargetField(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetTargetField(*v)
	}
	return _u
}

// ClearTargetField clears the value of the "target_field" field.
func (_u *ExtractionRuleUpdate) ClearTargetField() *ExtractionRuleUpdate {
	_u.mutation.ClearTargetField()
	return _u
}

// SetRuleContent sets the "rule_content" field.
func (_u *ExtractionRuleUpdate) SetRuleContent(v string) *ExtractionRuleUpdate {
	_u.mutation.SetRuleContent(v)
	return _u
}

// SetNillableRuleContent sets the "rule_content" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableRuleContent(v *string) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetRuleContent(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExtractionRuleUpdate) SetIsActive(v bool) *ExtractionRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableIsActive(v *bool) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRuleUpdate) SetCreatedAt(v time.Time) *ExtractionRuleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRuleUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionRuleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ExtractionRuleUpdate) SetProject(v *Project) *ExtractionRuleUpdate {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdate) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ExtractionRuleUpdate) ClearProject() *ExtractionRuleUpdate {
	_u.mutation.ClearProject()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdate) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleContent(); ok {
		if err := extractionrule.RuleContentValidator(v); err != nil {
			return &ValidationError{Name: "rule_content", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_content": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRule.project"`)
	}
	return nil
}

func (_u *ExtractionRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetField(); ok {
		_spec.SetField(extractionrule.FieldTargetField, field.TypeString, value)
	}
	if _u.mutation.TargetFieldCleared() {
		_spec.ClearField(extractionrule.FieldTargetField, field.TypeString)
	}
	if value, ok := _u.mutation.RuleContent(); ok {
		_spec.SetField(extractionrule.FieldRuleContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(extractionrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrule.ProjectTable,
			Columns: []string{extractionrule.ProjectColumn},
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
			Table:   extractionrule.ProjectTable,
			Columns: []string{extractionrule.ProjectColumn},
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
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRuleUpdateOne is the builder for updating a single ExtractionRule entity.
type ExtractionRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRuleMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionRuleUpdateOne) SetProjectID(v uuid.UUID) *ExtractionRuleUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableProjectID(v *uuid.UUID) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *ExtractionRuleUpdateOne) SetRuleName(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableRuleName(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetTargetField sets the "target_field" field.
func (_u *ExtractionRuleUpdateOne) SetTargetField(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetTargetField(v)
	return _u
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableTargetField(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetTargetField(*v)
	}
	return _u
}

// ClearTargetField clears the value of the "target_field" field.
func (_u *ExtractionRuleUpdateOne) ClearTargetField() *ExtractionRuleUpdateOne {
	_u.mutation.ClearTargetField()
	return _u
}

// SetRuleContent sets the "rule_content" field.
func (_u *ExtractionRuleUpdateOne) SetRuleContent(v string) *ExtractionRuleUpdateOne {
	_u.mutation.SetRuleContent(v)
	return _u
}

// SetNillableRuleContent sets the "rule_content" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableRuleContent(v *string) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetRuleContent(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExtractionRuleUpdateOne) SetIsActive(v bool) *ExtractionRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableIsActive(v *bool) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionRuleUpdateOne) SetCreatedAt(v time.Time) *ExtractionRuleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionRuleUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionRuleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ExtractionRuleUpdateOne) SetProject(v *Project) *ExtractionRuleUpdateOne {
	return _u.SetProjectID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_u *ExtractionRuleUpdateOne) Mutation() *ExtractionRuleMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ExtractionRuleUpdateOne) ClearProject() *ExtractionRuleUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// Where appends a list predicates to the ExtractionRuleUpdate builder.
func (_u *ExtractionRuleUpdateOne) Where(ps ...predicate.ExtractionRule) *ExtractionRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRuleUpdateOne) Select(field string, fields ...string) *ExtractionRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRule entity.
func (_u *ExtractionRuleUpdateOne) Save(ctx context.Context) (*ExtractionRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) SaveX(ctx context.Context) *ExtractionRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionRuleUpdateOne) check() error {
	if v, ok := _u.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleContent(); ok {
		if err := extractionrule.RuleContentValidator(v); err != nil {
			return &ValidationError{Name: "rule_content", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_content": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionRule.project"`)
	}
	return nil
}

func (_u *ExtractionRuleUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionrule.Table, extractionrule.Columns, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrule.FieldID)
		for _, f := range fields {
			if !extractionrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrule.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetField(); ok {
		_spec.SetField(extractionrule.FieldTargetField, field.TypeString, value)
	}
	if _u.mutation.TargetFieldCleared() {
		_spec.ClearField(extractionrule.FieldTargetField, field.TypeString)
	}
	if value, ok := _u.mutation.RuleContent(); ok {
		_spec.SetField(extractionrule.FieldRuleContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(extractionrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionrule.ProjectTable,
			Columns: []string{extractionrule.ProjectColumn},
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
			Table:   extractionrule.ProjectTable,
			Columns: []string{extractionrule.ProjectColumn},
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
	_node = &ExtractionRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
