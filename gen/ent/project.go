// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// Project is the model entity for the Project schema.
type Project struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// InboxAddress holds the value of the "inbox_address" field.
	InboxAddress *string `json:"inbox_address,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProjectQuery when eager-loading is set.
	Edges        ProjectEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProjectEdges holds the relations/edges for other nodes in the graph.
type ProjectEdges struct {
	// Fields holds the value of the fields edge.
	Fields []*SchemaField `json:"fields,omitempty"`
	// Collections holds the value of the collections edge.
	Collections []*Collection `json:"collections,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*ExtractionSession `json:"sessions,omitempty"`
	// Rules holds the value of the rules edge.
	Rules []*ExtractionRule `json:"rules,omitempty"`
	// Knowledge holds the value of the knowledge edge.
	Knowledge []*KnowledgeDocument `json:"knowledge,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) FieldsOrErr() ([]*SchemaField, error) {
	if e.loadedTypes[0] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// CollectionsOrErr returns the Collections value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) CollectionsOrErr() ([]*Collection, error) {
	if e.loadedTypes[1] {
		return e.Collections, nil
	}
	return nil, &NotLoadedError{edge: "collections"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) SessionsOrErr() ([]*ExtractionSession, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// RulesOrErr returns the Rules value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) RulesOrErr() ([]*ExtractionRule, error) {
	if e.loadedTypes[3] {
		return e.Rules, nil
	}
	return nil, &NotLoadedError{edge: "rules"}
}

// KnowledgeOrErr returns the Knowledge value or an error if the edge
// was not loaded in eager-loading.
func (e ProjectEdges) KnowledgeOrErr() ([]*KnowledgeDocument, error) {
	if e.loadedTypes[4] {
		return e.Knowledge, nil
	}
	return nil, &NotLoadedError{edge: "knowledge"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Project) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case project.FieldName, project.FieldDescription, project.FieldInboxAddress:
			values[i] = new(sql.NullString)
		case project.FieldCreatedAt, project.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case project.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Project fields.
func (_m *Project) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case project.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case project.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case project.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case project.FieldInboxAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field inbox_address", values[i])
			} else if value.Valid {
				_m.InboxAddress = new(string)
				*_m.InboxAddress = value.String
			}
		case project.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case project.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Project.
// This includes values selected through modifiers, order, etc.
func (_m *Project) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFields queries the "fields" edge of the Project entity.
func (_m *Project) QueryFields() *SchemaFieldQuery {
	return NewProjectClient(_m.config).QueryFields(_m)
}

// QueryCollections queries the "collections" edge of the Project entity.
func (_m *Project) QueryCollections() *CollectionQuery {
	return NewProjectClient(_m.config).QueryCollections(_m)
}

// QuerySessions queries the "sessions" edge of the Project entity.
func (_m *Project) QuerySessions() *ExtractionSessionQuery {
	return NewProjectClient(_m.config).QuerySessions(_m)
}

// QueryRules queries the "rules" edge of the Project entity.
func (_m *Project) QueryRules() *ExtractionRuleQuery {
	return NewProjectClient(_m.config).QueryRules(_m)
}

// QueryKnowledge queries the "knowledge" edge of the Project entity.
func (_m *Project) QueryKnowledge() *KnowledgeDocumentQuery {
	return NewProjectClient(_m.config).QueryKnowledge(_m)
}

// Update returns a builder for updating this Project.
// Note that you need to call Project.Unwrap() before calling this method if this Project
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Project) Update() *ProjectUpdateOne {
	return NewProjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Project entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Project) Unwrap() *Project {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Project is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Project) String() string {
	var builder strings.Builder
	builder.WriteString("Project(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.InboxAddress; v != nil {
		builder.WriteString("inbox_address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Projects is a parsable slice of Project.
type Projects []*Project
