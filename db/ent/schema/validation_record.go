package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/db/ent/schema/utils"
	"github.com/google/uuid"
)

// ValidationRecord is one extracted value for a schema field or a collection
// property. record_index is 0 for top-level fields and the 0-based item index
// for collection properties.
type ValidationRecord struct{ ent.Schema }

func (ValidationRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "validation_records"},
	}
}

func (ValidationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("session_id", uuid.UUID{}),
		// references either schema_fields.id or collection_properties.id
		field.UUID("field_id", uuid.UUID{}),
		field.UUID("collection_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("record_index").NonNegative().Default(0),
		field.String("field_name").NotEmpty(),
		field.String("extracted_value").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("validation_status").NotEmpty().
			Default(string(constants.ValidationStatusPending)).
			Validate(utils.EnumValidator(constants.ValidationStatuses...)),
		field.Int("confidence_score").Range(0, 100).
			Default(constants.DefaultConfidenceScore),
		field.String("reasoning").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ValidationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ExtractionSession.Type).
			Ref("records").
			Field("session_id").
			Required().
			Unique(),
	}
}

func (ValidationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "field_id", "record_index").Unique(),
		index.Fields("session_id", "collection_id", "record_index"),
	}
}
