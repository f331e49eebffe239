// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// KnowledgeDocument is the model entity for the KnowledgeDocument schema.
type KnowledgeDocument struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// TargetField holds the value of the "target_field" field.
	TargetField string `json:"target_field,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KnowledgeDocumentQuery when eager-loading is set.
	Edges        KnowledgeDocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KnowledgeDocumentEdges holds the relations/edges for other nodes in the graph.
type KnowledgeDocumentEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KnowledgeDocumentEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KnowledgeDocument) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case knowledgedocument.FieldDisplayName, knowledgedocument.FieldContent, knowledgedocument.FieldTargetField:
			values[i] = new(sql.NullString)
		case knowledgedocument.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case knowledgedocument.FieldID, knowledgedocument.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KnowledgeDocument fields.
func (_m *KnowledgeDocument) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case knowledgedocument.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case knowledgedocument.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case knowledgedocument.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case knowledgedocument.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case knowledgedocument.FieldTargetField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_field", values[i])
			} else if value.Valid {
				_m.TargetField = value.String
			}
		case knowledgedocument.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KnowledgeDocument.
// This includes values selected through modifiers, order, etc.
func (_m *KnowledgeDocument) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the KnowledgeDocument entity.
func (_m *KnowledgeDocument) QueryProject() *ProjectQuery {
	return NewKnowledgeDocumentClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this KnowledgeDocument.
// Note that you need to call KnowledgeDocument.Unwrap() before calling this method if this KnowledgeDocument
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KnowledgeDocument) Update() *KnowledgeDocumentUpdateOne {
	return NewKnowledgeDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KnowledgeDocument entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KnowledgeDocument) Unwrap() *KnowledgeDocument {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KnowledgeDocument is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KnowledgeDocument) String() string {
	var builder strings.Builder
	builder.WriteString("KnowledgeDocument(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("target_field=")
	builder.WriteString(_m.TargetField)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KnowledgeDocuments is a parsable slice of KnowledgeDocument.
type KnowledgeDocuments []*KnowledgeDocument
