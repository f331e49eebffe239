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
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// ExtractionSessionUpdate is the builder for updating ExtractionSession entities.
type ExtractionSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionSessionMutation
}

// Where appends a list predicates to the ExtractionSessionUpdate builder.
func (_u *ExtractionSessionUpdate) Where(ps ...predicate.ExtractionSession) *ExtractionSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionSessionUpdate) SetProjectID(v uuid.UUID) *ExtractionSessionUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableProjectID(v *uuid.UUID) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractionSessionUpdate) SetName(v string) *ExtractionSessionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableName(v *string) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExtractionSessionUpdate) ClearName() *ExtractionSessionUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionSessionUpdate) SetStatus(v string) *ExtractionSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableStatus(v *string) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *ExtractionSessionUpdate) SetProgressMessage(v string) *ExtractionSessionUpdate {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableProgressMessage(v *string) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (_u *ExtractionSessionUpdate) ClearProgressMessage() *ExtractionSessionUpdate {
	_u.mutation.ClearProgressMessage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionSessionUpdate) SetErrorMessage(v string) *ExtractionSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableErrorMessage(v *string) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionSessionUpdate) ClearErrorMessage() *ExtractionSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionSessionUpdate) SetModelName(v string) *ExtractionSessionUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableModelName(v *string) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionSessionUpdate) ClearModelName() *ExtractionSessionUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionSessionUpdate) SetStartedAt(v time.Time) *ExtractionSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableStartedAt(v *time.Time) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionSessionUpdate) ClearStartedAt() *ExtractionSessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionSessionUpdate) SetFinishedAt(v time.Time) *ExtractionSessionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionSessionUpdate) ClearFinishedAt() *ExtractionSessionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionSessionUpdate) SetCreatedAt(v time.Time) *ExtractionSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionSessionUpdate) SetUpdatedAt(v time.Time) *ExtractionSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ExtractionSessionUpdate) SetProject(v *Project) *ExtractionSessionUpdate {
	return _u.SetProjectID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_u *ExtractionSessionUpdate) AddDocumentIDs(ids ...uuid.UUID) *ExtractionSessionUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_u *ExtractionSessionUpdate) AddDocuments(v ...*SessionDocument) *ExtractionSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the ValidationRecord entity by IDs.
func (_u *ExtractionSessionUpdate) AddRecordIDs(ids ...uuid.UUID) *ExtractionSessionUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the ValidationRecord entity.
func (_u *ExtractionSessionUpdate) AddRecords(v ...*ValidationRecord) *ExtractionSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ExtractionSessionMutation object of the builder.
func (_u *ExtractionSessionUpdate) Mutation() *ExtractionSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ExtractionSessionUpdate) ClearProject() *ExtractionSessionUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocuments clears all "documents" edges to the SessionDocument entity.
func (_u *ExtractionSessionUpdate) ClearDocuments() *ExtractionSessionUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to SessionDocument entities by IDs.
func (_u *ExtractionSessionUpdate) RemoveDocumentIDs(ids ...uuid.UUID) *ExtractionSessionUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to SessionDocument entities.
func (_u *ExtractionSessionUpdate) RemoveDocuments(v ...*SessionDocument) *ExtractionSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearRecords clears all "records" edges to the ValidationRecord entity.
func (_u *ExtractionSessionUpdate) ClearRecords() *ExtractionSessionUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to ValidationRecord entities by IDs.
func (_u *ExtractionSessionUpdate) RemoveRecordIDs(ids ...uuid.UUID) *ExtractionSessionUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to ValidationRecord entities.
func (_u *ExtractionSessionUpdate) RemoveRecords(v ...*ValidationRecord) *ExtractionSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionSession.project"`)
	}
	return nil
}

func (_u *ExtractionSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionsession.Table, extractionsession.Columns, sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractionsession.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(extractionsession.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(extractionsession.FieldProgressMessage, field.TypeString, value)
	}
	if _u.mutation.ProgressMessageCleared() {
		_spec.ClearField(extractionsession.FieldProgressMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionsession.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionsession.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionsession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionsession.ProjectTable,
			Columns: []string{extractionsession.ProjectColumn},
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
			Table:   extractionsession.ProjectTable,
			Columns: []string{extractionsession.ProjectColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionSessionUpdateOne is the builder for updating a single ExtractionSession entity.
type ExtractionSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionSessionMutation
}

// SetProjectID sets the "project_id" field.
func (_u *ExtractionSessionUpdateOne) SetProjectID(v uuid.UUID) *ExtractionSessionUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableProjectID(v *uuid.UUID) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractionSessionUpdateOne) SetName(v string) *ExtractionSessionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableName(v *string) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExtractionSessionUpdateOne) ClearName() *ExtractionSessionUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionSessionUpdateOne) SetStatus(v string) *ExtractionSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableStatus(v *string) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProgressMessage sets the "progress_message" field.
func (_u *ExtractionSessionUpdateOne) SetProgressMessage(v string) *ExtractionSessionUpdateOne {
	_u.mutation.SetProgressMessage(v)
	return _u
}

// SetNillableProgressMessage sets the "progress_message" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableProgressMessage(v *string) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetProgressMessage(*v)
	}
	return _u
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (_u *ExtractionSessionUpdateOne) ClearProgressMessage() *ExtractionSessionUpdateOne {
	_u.mutation.ClearProgressMessage()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionSessionUpdateOne) SetErrorMessage(v string) *ExtractionSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableErrorMessage(v *string) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionSessionUpdateOne) ClearErrorMessage() *ExtractionSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionSessionUpdateOne) SetModelName(v string) *ExtractionSessionUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableModelName(v *string) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionSessionUpdateOne) ClearModelName() *ExtractionSessionUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionSessionUpdateOne) SetStartedAt(v time.Time) *ExtractionSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionSessionUpdateOne) ClearStartedAt() *ExtractionSessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionSessionUpdateOne) SetFinishedAt(v time.Time) *ExtractionSessionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionSessionUpdateOne) ClearFinishedAt() *ExtractionSessionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionSessionUpdateOne) SetCreatedAt(v time.Time) *ExtractionSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionSessionUpdateOne) SetUpdatedAt(v time.Time) *ExtractionSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ExtractionSessionUpdateOne) SetProject(v *Project) *ExtractionSessionUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by IDs.
func (_u *ExtractionSessionUpdateOne) AddDocumentIDs(ids ...uuid.UUID) *ExtractionSessionUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the SessionDocument entity.
func (_u *ExtractionSessionUpdateOne) AddDocuments(v ...*SessionDocument) *ExtractionSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the ValidationRecord entity by IDs.
func (_u *ExtractionSessionUpdateOne) AddRecordIDs(ids ...uuid.UUID) *ExtractionSessionUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the ValidationRecord entity.
func (_u *ExtractionSessionUpdateOne) AddRecords(v ...*ValidationRecord) *ExtractionSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the ExtractionSessionMutation object of the builder.
func (_u *ExtractionSessionUpdateOne) Mutation() *ExtractionSessionMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ExtractionSessionUpdateOne) ClearProject() *ExtractionSessionUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearDocuments clears all "documents" edges to the SessionDocument entity.
func (_u *ExtractionSessionUpdateOne) ClearDocuments() *ExtractionSessionUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to SessionDocument entities by IDs.
func (_u *ExtractionSessionUpdateOne) RemoveDocumentIDs(ids ...uuid.UUID) *ExtractionSessionUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to SessionDocument entities.
func (_u *ExtractionSessionUpdateOne) RemoveDocuments(v ...*SessionDocument) *ExtractionSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearRecords clears all "records" edges to the ValidationRecord entity.
func (_u *ExtractionSessionUpdateOne) ClearRecords() *ExtractionSessionUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to ValidationRecord entities by IDs.
func (_u *ExtractionSessionUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *ExtractionSessionUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to ValidationRecord entities.
func (_u *ExtractionSessionUpdateOne) RemoveRecords(v ...*ValidationRecord) *ExtractionSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the ExtractionSessionUpdate builder.
func (_u *ExtractionSessionUpdateOne) Where(ps ...predicate.ExtractionSession) *ExtractionSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionSessionUpdateOne) Select(field string, fields ...string) *ExtractionSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionSession entity.
func (_u *ExtractionSessionUpdateOne) Save(ctx context.Context) (*ExtractionSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionSessionUpdateOne) SaveX(ctx context.Context) *ExtractionSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionSession.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionSession.project"`)
	}
	return nil
}

func (_u *ExtractionSessionUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionsession.Table, extractionsession.Columns, sqlgraph.NewFieldSpec(extractionsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionsession.FieldID)
		for _, f := range fields {
			if !extractionsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionsession.FieldID {
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
		_spec.SetField(extractionsession.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(extractionsession.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProgressMessage(); ok {
		_spec.SetField(extractionsession.FieldProgressMessage, field.TypeString, value)
	}
	if _u.mutation.ProgressMessageCleared() {
		_spec.ClearField(extractionsession.FieldProgressMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionsession.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionsession.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionsession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionsession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionsession.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionsession.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionsession.ProjectTable,
			Columns: []string{extractionsession.ProjectColumn},
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
			Table:   extractionsession.ProjectTable,
			Columns: []string{extractionsession.ProjectColumn},
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
	if _u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.DocumentsTable,
			Columns: []string{extractionsession.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessiondocument.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionsession.RecordsTable,
			Columns: []string{extractionsession.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
