// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// KnowledgeDocumentCreate is the builder for creating a KnowledgeDocument entity.
type KnowledgeDocumentCreate struct {
	config
	mutation *KnowledgeDocumentMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *KnowledgeDocumentCreate) SetProjectID(v uuid.UUID) *KnowledgeDocumentCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *KnowledgeDocumentCreate) SetDisplayName(v string) *KnowledgeDocumentCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *KnowledgeDocumentCreate) SetContent(v string) *KnowledgeDocumentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTargetField sets the "target_field" field.
func (_c *KnowledgeDocumentCreate) SetTargetField(v string) *KnowledgeDocumentCreate {
	_c.mutation.SetTargetField(v)
	return _c
}

// SetNillableTargetField sets the "target_field" field if the given value is not nil.
func (_c *KnowledgeDocumentCreate) SetNillableTargetField(v *string) *KnowledgeDocumentCreate {
	if v != nil {
		_c.SetTargetField(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeDocumentCreate) SetCreatedAt(v time.Time) *KnowledgeDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeDocumentCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeDocumentCreate) SetID(v uuid.UUID) *KnowledgeDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *KnowledgeDocumentCreate) SetNillableID(v *uuid.UUID) *KnowledgeDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *KnowledgeDocumentCreate) SetProject(v *Project) *KnowledgeDocumentCreate {
	return _c.SetProjectID(v.ID)
}

// Mutation returns the KnowledgeDocumentMutation object of the builder.
func (_c *KnowledgeDocumentCreate) Mutation() *KnowledgeDocumentMutation {
	return _c.mutation
}

// Save creates the KnowledgeDocument in the database.
func (_c *KnowledgeDocumentCreate) Save(ctx context.Context) (*KnowledgeDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeDocumentCreate) SaveX(ctx context.Context) *KnowledgeDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgedocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := knowledgedocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeDocumentCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "KnowledgeDocument.project_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "KnowledgeDocument.display_name"`)}
	}
	if v, ok := _c.mutation.DisplayName(); ok {
		if err := knowledgedocument.DisplayNameValidator(v); err != nil {
			return &ValidationError{Name: "display_name", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.display_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeDocument.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := knowledgedocument.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "KnowledgeDocument.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeDocument.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "KnowledgeDocument.project"`)}
	}
	return nil
}

func (_c *KnowledgeDocumentCreate) sqlSave(ctx context.Context) (*KnowledgeDocument, error) {
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

func (_c *KnowledgeDocumentCreate) createSpec() (*KnowledgeDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgedocument.Table, sqlgraph.NewFieldSpec(knowledgedocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(knowledgedocument.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgedocument.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TargetField(); ok {
		_spec.SetField(knowledgedocument.FieldTargetField, field.TypeString, value)
		_node.TargetField = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgedocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KnowledgeDocumentCreateBulk is the builder for creating many KnowledgeDocument entities in bulk.
type KnowledgeDocumentCreateBulk struct {
	config
	err      error
	builders []*KnowledgeDocumentCreate
}

// Save creates the KnowledgeDocument entities in the database.
func (_c *KnowledgeDocumentCreateBulk) Save(ctx context.Context) ([]*KnowledgeDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeDocumentMutation)
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
func (_c *KnowledgeDocumentCreateBulk) SaveX(ctx context.Context) []*KnowledgeDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
