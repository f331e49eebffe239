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

	"github.com/extractly-io/extractly/db/ent/schema/utils"
	"github.com/google/uuid"
)

// DocumentSources holds the allowed values for the source column.
var DocumentSources = []string{"upload", "email"}

type SessionDocument struct{ ent.Schema }

func (SessionDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "session_documents"},
	}
}

func (SessionDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("session_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("mime_type").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("source").NotEmpty().Default("upload").
			Validate(utils.EnumValidator(DocumentSources...)),
		field.String("extracted_content").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (SessionDocument) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE session
		edge.From("session", ExtractionSession.Type).
			Ref("documents").
			Field("session_id").
			Required().
			Unique(),
	}
}

func (SessionDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "content_hash").Unique(),
		index.Fields("session_id", "uploaded_at"),
	}
}
