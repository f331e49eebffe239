// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

// ValidationRecord is the model entity for the ValidationRecord schema.
type ValidationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// FieldID holds the value of the "field_id" field.
	FieldID uuid.UUID `json:"field_id,omitempty"`
	// CollectionID holds the value of the "collection_id" field.
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
	// RecordIndex holds the value of the "record_index" field.
	RecordIndex int `json:"record_index,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue string `json:"extracted_value,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus string `json:"validation_status,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore int `json:"confidence_score,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ValidationRecordQuery when eager-loading is set.
	Edges        ValidationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ValidationRecordEdges holds the relations/edges for other nodes in the graph.
type ValidationRecordEdges struct {
	// Session holds the value of the session edge.
	Session *ExtractionSession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ValidationRecordEdges) SessionOrErr() (*ExtractionSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ValidationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case validationrecord.FieldCollectionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case validationrecord.FieldRecordIndex, validationrecord.FieldConfidenceScore:
			values[i] = new(sql.NullInt64)
		case validationrecord.FieldFieldName, validationrecord.FieldExtractedValue, validationrecord.FieldValidationStatus, validationrecord.FieldReasoning:
			values[i] = new(sql.NullString)
		case validationrecord.FieldCreatedAt, validationrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case validationrecord.FieldID, validationrecord.FieldSessionID, validationrecord.FieldFieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ValidationRecord fields.
func (_m *ValidationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case validationrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case validationrecord.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case validationrecord.FieldFieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field field_id", values[i])
			} else if value != nil {
				_m.FieldID = *value
			}
		case validationrecord.FieldCollectionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field collection_id", values[i])
			} else if value.Valid {
				_m.CollectionID = new(uuid.UUID)
				*_m.CollectionID = *value.S.(*uuid.UUID)
			}
		case validationrecord.FieldRecordIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field record_index", values[i])
			} else if value.Valid {
				_m.RecordIndex = int(value.Int64)
			}
		case validationrecord.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case validationrecord.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = value.String
			}
		case validationrecord.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case validationrecord.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = int(value.Int64)
			}
		case validationrecord.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case validationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case validationrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ValidationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ValidationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ValidationRecord entity.
func (_m *ValidationRecord) QuerySession() *ExtractionSessionQuery {
	return NewValidationRecordClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this ValidationRecord.
// Note that you need to call ValidationRecord.Unwrap() before calling this method if this ValidationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ValidationRecord) Update() *ValidationRecordUpdateOne {
	return NewValidationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ValidationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ValidationRecord) Unwrap() *ValidationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ValidationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ValidationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ValidationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("field_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldID))
	builder.WriteString(", ")
	if v := _m.CollectionID; v != nil {
		builder.WriteString("collection_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("record_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordIndex))
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("extracted_value=")
	builder.WriteString(_m.ExtractedValue)
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ValidationRecords is a parsable slice of ValidationRecord.
type ValidationRecords []*ValidationRecord
