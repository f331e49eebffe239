// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// ExtractionRuleCreate is the builder for creating a ExtractionRule entity.
type ExtractionRuleCreate struct {
	config
	mutation *ExtractionRuleMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *ExtractionRuleCreate) SetProjectID(v uuid.UUID) *ExtractionRuleCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetRuleName sets the "rule_name" field.
func (_c *ExtractionRuleCreate) SetRuleName(v string) *ExtractionRuleCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetTargetField sets the "target_field" field.
func (_c *ExtractionRuleCreate) SetTargetField(v string) *ExtractionRuleCreate {
	_c.mutation.SetTargetField(v)
	return _c
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableTargetField(v *string) *ExtractionRuleCreate {
	if v != nil {
		_c.SetTargetField(*v)
	}
	return _c
}

// SetRuleContent sets the "rule_content" field.
func (_c *ExtractionRuleCreate) SetRuleContent(v string) *ExtractionRuleCreate {
	_c.mutation.SetRuleContent(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ExtractionRuleCreate) SetIsActive(v bool) *ExtractionRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableIsActive(v *bool) *ExtractionRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRuleCreate) SetCreatedAt(v time.Time) *ExtractionRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRuleCreate) SetID(v uuid.UUID) *ExtractionRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionRuleCreate) SetNillableID(v *uuid.UUID) *ExtractionRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ExtractionRuleCreate) SetProject(v *Project) *ExtractionRuleCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the ExtractionRuleMutation object of the builder.
func (_c *ExtractionRuleCreate) Mutation() *ExtractionRuleMutation {
	return _c.mutation
}

// Save creates the ExtractionRule in the database.
func (_c *ExtractionRuleCreate) Save(ctx context.Context) (*ExtractionRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRuleCreate) SaveX(ctx context.Context) *ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRuleCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := extractionrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRuleCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "ExtractionRule.project_id"`)}
	}
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "ExtractionRule.rule_name"`)}
	}
	if v, ok := _c.mutation.RuleName(); ok {
		if err := extractionrule.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleContent(); !ok {
		return &ValidationError{Name: "rule_content", err: errors.New(`ent: missing required field "ExtractionRule.rule_content"`)}
	}
	if v, ok := _c.mutation.RuleContent(); ok {
		if err := extractionrule.RuleContentValidator(v); err != nil {
			return &ValidationError{Name: "rule_content", err: fmt.Errorf(`ent: validator failed for field "ExtractionRule.rule_content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ExtractionRule.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRule.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "ExtractionRule.project"`)}
	}
	return nil
}

func (_c *ExtractionRuleCreate) sqlSave(ctx context.Context) (*ExtractionRule, error) {
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

func (_c *ExtractionRuleCreate) createSpec() (*ExtractionRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrule.Table, sqlgraph.NewFieldSpec(extractionrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(extractionrule.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.TargetField(); ok {
		_spec.SetField(extractionrule.FieldTargetField, field.TypeString, value)
		_node.TargetField = value
	}
	if value, ok := _c.mutation.RuleContent(); ok {
		_spec.SetField(extractionrule.FieldRuleContent, field.TypeString, value)
		_node.RuleContent = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(extractionrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionRuleCreateBulk is the builder for creating many ExtractionRule entities in bulk.
type ExtractionRuleCreateBulk struct {
	config
	err      error
	builders []*ExtractionRuleCreate
}

// Save creates the ExtractionRule entities in the database.
func (_c *ExtractionRuleCreateBulk) Save(ctx context.Context) ([]*ExtractionRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRuleMutation)
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
func (_c *ExtractionRuleCreateBulk) SaveX(ctx context.Context) []*ExtractionRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
