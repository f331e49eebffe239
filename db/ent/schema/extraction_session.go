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

type ExtractionSession struct{ ent.Schema }

func (ExtractionSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_sessions"},
	}
}

func (ExtractionSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").Optional(),
		field.String("status").NotEmpty().
			Default(string(constants.SessionStatusPending)).
			Validate(utils.EnumValidator(constants.SessionStatuses...)),
		field.String("progress_message").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("model_name").Optional().Nillable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("sessions").
			Field("project_id").
			Required().
			Unique(),
		edge.To("documents", SessionDocument.Type),
		edge.To("records", ValidationRecord.Type),
	}
}

func (ExtractionSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status", "created_at"),
	}
}
