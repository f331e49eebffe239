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

// Collection is a repeated-record group inside a project schema: the pipeline
// identifies distinct items in the documents and extracts every property for
// each item found.
type Collection struct{ ent.Schema }

func (Collection) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "collections"},
	}
}

func (Collection) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Collection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("collections").
			Field("project_id").
			Required().
			Unique(),
		edge.To("properties", CollectionProperty.Type),
	}
}

func (Collection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}

// CollectionProperty is one typed property extracted for every item of a
// collection.
type CollectionProperty struct{ ent.Schema }

func (CollectionProperty) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "collection_properties"},
	}
}

func (CollectionProperty) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("collection_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("property_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FieldTypes...)),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("choices", []string{}).Optional(),
		field.Bool("required").Default(false),
		field.Int("position").NonNegative().Default(0),
	}
}

func (CollectionProperty) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("collection", Collection.Type).
			Ref("properties").
			Field("collection_id").
			Required().
			Unique(),
	}
}

func (CollectionProperty) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("collection_id", "name").Unique(),
	}
}
