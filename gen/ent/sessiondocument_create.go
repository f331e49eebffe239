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
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/google/uuid"
)

// SessionDocumentCreate is the builder for creating a SessionDocument entity.
type SessionDocumentCreate struct {
	config
	mutation *SessionDocumentMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionDocumentCreate) SetSessionID(v uuid.UUID) *SessionDocumentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *SessionDocumentCreate) SetFileName(v string) *SessionDocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *SessionDocumentCreate) SetMimeType(v string) *SessionDocumentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *SessionDocumentCreate) SetFileSize(v int) *SessionDocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SessionDocumentCreate) SetContentHash(v []byte) *SessionDocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SessionDocumentCreate) SetSource(v string) *SessionDocumentCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SessionDocumentCreate) SetNillableSource(v *string) *SessionDocumentCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetExtractedContent sets the "extracted_content" field.
func (_c *SessionDocumentCreate) SetExtractedContent(v string) *SessionDocumentCreate {
	_c.mutation.SetExtractedContent(v)
	return _c
}

// SetNillableExtractedContent sets the "extracted_content" field if the given value is not nil.
func (_c *SessionDocumentCreate) SetNillableExtractedContent(v *string) *SessionDocumentCreate {
	if v != nil {
		_c.SetExtractedContent(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *SessionDocumentCreate) SetUploadedAt(v time.Time) *SessionDocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *SessionDocumentCreate) SetNillableUploadedAt(v *time.Time) *SessionDocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionDocumentCreate) SetID(v uuid.UUID) *SessionDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionDocumentCreate) SetNillableID(v *uuid.UUID) *SessionDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_c *SessionDocumentCreate) SetSession(v *ExtractionSession) *SessionDocumentCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionDocumentMutation object of the builder.
func (_c *SessionDocumentCreate) Mutation() *SessionDocumentMutation {
	return _c.mutation
}

// Save creates the SessionDocument in the database.
func (_c *SessionDocumentCreate) Save(ctx context.Context) (*SessionDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionDocumentCreate) SaveX(ctx context.Context) *SessionDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionDocumentCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := sessiondocument.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := sessiondocument.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessiondocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionDocumentCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionDocument.session_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "SessionDocument.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := sessiondocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "SessionDocument.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := sessiondocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "SessionDocument.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := sessiondocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SessionDocument.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := sessiondocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SessionDocument.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := sessiondocument.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "SessionDocument.uploaded_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionDocument.session"`)}
	}
	return nil
}

func (_c *SessionDocumentCreate) sqlSave(ctx context.Context) (*SessionDocument, error) {
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

func (_c *SessionDocumentCreate) createSpec() (*SessionDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessiondocument.Table, sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(sessiondocument.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(sessiondocument.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(sessiondocument.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sessiondocument.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(sessiondocument.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExtractedContent(); ok {
		_spec.SetField(sessiondocument.FieldExtractedContent, field.TypeString, value)
		_node.ExtractedContent = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(sessiondocument.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessiondocument.SessionTable,
			Columns: []string{sessiondocument.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionDocumentCreateBulk is the builder for creating many SessionDocument entities in bulk.
type SessionDocumentCreateBulk struct {
	config
	err      error
	builders []*SessionDocumentCreate
}

// Save creates the SessionDocument entities in the database.
func (_c *SessionDocumentCreateBulk) Save(ctx context.Context) ([]*SessionDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionDocumentMutation)
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
func (_c *SessionDocumentCreateBulk) SaveX(ctx context.Context) []*SessionDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
