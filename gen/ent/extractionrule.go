// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/google/uuid"
)

// ExtractionRule is the model entity for the ExtractionRule schema.
type ExtractionRule struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// RuleName holds the value of the "rule_name" field.
	RuleName string `json:"rule_name,omitempty"`
	// TargetField holds the value of the "target_field" field.
	TargetField string `json:"target_field,omitempty"`
	// RuleContent holds the value of the "rule_content" field.
	RuleContent string `json:"rule_content,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionRuleQuery when eager-loading is set.
	Edges        ExtractionRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionRuleEdges holds the relations/edges for other nodes in the graph.
type ExtractionRuleEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionRuleEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrule.FieldIsActive:
			values[i] = new(sql.NullBool)
		case extractionrule.FieldRuleName, extractionrule.FieldTargetField, extractionrule.FieldRuleContent:
			values[i] = new(sql.NullString)
		case extractionrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionrule.FieldID, extractionrule.FieldProjectID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRule fields.
func (_m *ExtractionRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrule.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionrule.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				_m.ProjectID = *value
			}
		case extractionrule.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case extractionrule.FieldTargetField:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_field", values[i])
			} else if value.Valid {
				_m.TargetField = value.String
			}
		case extractionrule.FieldRuleContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_content", values[i])
			} else if value.Valid {
				_m.RuleContent = value.String
			}
		case extractionrule.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case extractionrule.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRule.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ExtractionRule entity.
func (_m *ExtractionRule) QueryProject() *ProjectQuery {
	return NewExtractionRuleClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this ExtractionRule.
// Note that you need to call ExtractionRule.Unwrap() before calling this method if this ExtractionRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRule) Update() *ExtractionRuleUpdateOne {
	return NewExtractionRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRule) Unwrap() *ExtractionRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRule) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("target_field=")
	builder.WriteString(_m.TargetField)
	builder.WriteString(", ")
	builder.WriteString("rule_content=")
	builder.WriteString(_m.RuleContent)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRules is a parsable slice of ExtractionRule.
type ExtractionRules []*ExtractionRule
