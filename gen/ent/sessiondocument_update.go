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
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/google/uuid"
)

// SessionDocumentUpdate is the builder for updating SessionDocument entities.
type SessionDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *SessionDocumentMutation
}

// Where appends a list predicates to the SessionDocumentUpdate builder.
func (_u *SessionDocumentUpdate) Where(ps ...predicate.SessionDocument) *SessionDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionDocumentUpdate) SetSessionID(v uuid.UUID) *SessionDocumentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableSessionID(v *uuid.UUID) *SessionDocumentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *SessionDocumentUpdate) SetFileName(v string) *SessionDocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableFileName(v *string) *SessionDocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *SessionDocumentUpdate) SetMimeType(v string) *SessionDocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableMimeType(v *string) *SessionDocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SessionDocumentUpdate) SetFileSize(v int) *SessionDocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableFileSize(v *int) *SessionDocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SessionDocumentUpdate) AddFileSize(v int) *SessionDocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SessionDocumentUpdate) SetContentHash(v []byte) *SessionDocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *SessionDocumentUpdate) SetSource(v string) *SessionDocumentUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableSource(v *string) *SessionDocumentUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *SessionDocumentUpdate) SetExtractedContent(v string) *SessionDocumentUpdate {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// SetNillableExtractedContent sets the "extracted_content" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableExtractedContent(v *string) *SessionDocumentUpdate {
	if v != nil {
		_u.SetExtractedContent(*v)
	}
	return _u
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (_u *SessionDocumentUpdate) ClearExtractedContent() *SessionDocumentUpdate {
	_u.mutation.ClearExtractedContent()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SessionDocumentUpdate) SetUploadedAt(v time.Time) *SessionDocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SessionDocumentUpdate) SetNillableUploadedAt(v *time.Time) *SessionDocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_u *SessionDocumentUpdate) SetSession(v *ExtractionSession) *SessionDocumentUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionDocumentMutation object of the builder.
func (_u *SessionDocumentUpdate) Mutation() *SessionDocumentMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (_u *SessionDocumentUpdate) ClearSession() *SessionDocumentUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionDocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionDocumentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := sessiondocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := sessiondocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sessiondocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sessiondocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := sessiondocument.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.source": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionDocument.session"`)
	}
	return nil
}

func (_u *SessionDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiondocument.Table, sessiondocument.Columns, sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(sessiondocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(sessiondocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sessiondocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sessiondocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sessiondocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sessiondocument.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(sessiondocument.FieldExtractedContent, field.TypeString, value)
	}
	if _u.mutation.ExtractedContentCleared() {
		_spec.ClearField(sessiondocument.FieldExtractedContent, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sessiondocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiondocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionDocumentUpdateOne is the builder for updating a single SessionDocument entity.
type SessionDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionDocumentMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionDocumentUpdateOne) SetSessionID(v uuid.UUID) *SessionDocumentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableSessionID(v *uuid.UUID) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *SessionDocumentUpdateOne) SetFileName(v string) *SessionDocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableFileName(v *string) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *SessionDocumentUpdateOne) SetMimeType(v string) *SessionDocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableMimeType(v *string) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *SessionDocumentUpdateOne) SetFileSize(v int) *SessionDocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableFileSize(v *int) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *SessionDocumentUpdateOne) AddFileSize(v int) *SessionDocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SessionDocumentUpdateOne) SetContentHash(v []byte) *SessionDocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *SessionDocumentUpdateOne) SetSource(v string) *SessionDocumentUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableSource(v *string) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedContent sets the "extracted_content" field.
func (_u *SessionDocumentUpdateOne) SetExtractedContent(v string) *SessionDocumentUpdateOne {
	_u.mutation.SetExtractedContent(v)
	return _u
}

// SetNillableExtractedContent sets the "extracted_content" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableExtractedContent(v *string) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetExtractedContent(*v)
	}
	return _u
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (_u *SessionDocumentUpdateOne) ClearExtractedContent() *SessionDocumentUpdateOne {
	_u.mutation.ClearExtractedContent()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *SessionDocumentUpdateOne) SetUploadedAt(v time.Time) *SessionDocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *SessionDocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *SessionDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetSession sets the "session" edge to the ExtractionSession entity.
func (_u *SessionDocumentUpdateOne) SetSession(v *ExtractionSession) *SessionDocumentUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the SessionDocumentMutation object of the builder.
func (_u *SessionDocumentUpdateOne) Mutation() *SessionDocumentMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (_u *SessionDocumentUpdateOne) ClearSession() *SessionDocumentUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the SessionDocumentUpdate builder.
func (_u *SessionDocumentUpdateOne) Where(ps ...predicate.SessionDocument) *SessionDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionDocumentUpdateOne) Select(field string, fields ...string) *SessionDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionDocument entity.
func (_u *SessionDocumentUpdateOne) Save(ctx context.Context) (*SessionDocument, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionDocumentUpdateOne) SaveX(ctx context.Context) *SessionDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := sessiondocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := sessiondocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := sessiondocument.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := sessiondocument.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := sessiondocument.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "SessionDocument.source": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionDocument.session"`)
	}
	return nil
}

func (_u *SessionDocumentUpdateOne) sqlSave(ctx context.Context) (_node *SessionDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessiondocument.Table, sessiondocument.Columns, sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessiondocument.FieldID)
		for _, f := range fields {
			if !sessiondocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessiondocument.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(sessiondocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(sessiondocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(sessiondocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(sessiondocument.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sessiondocument.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(sessiondocument.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedContent(); ok {
		_spec.SetField(sessiondocument.FieldExtractedContent, field.TypeString, value)
	}
	if _u.mutation.ExtractedContentCleared() {
		_spec.ClearField(sessiondocument.FieldExtractedContent, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(sessiondocument.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SessionDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessiondocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
