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

// SchemaField is one top-level field of a project's target schema.
type SchemaField struct{ ent.Schema }

func (SchemaField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "schema_fields"},
	}
}

func (SchemaField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("field_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("choices", []string{}).Optional(),
		field.Bool("required").Default(false),
		field.Int("position").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (SchemaField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("fields").
			Field("project_id").
			Required().
			Unique(),
	}
}

func (SchemaField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
		index.Fields("project_id", "position"),
	}
}
