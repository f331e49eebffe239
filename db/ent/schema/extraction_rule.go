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

	"github.com/google/uuid"
)

// ExtractionRule is user-authored guidance injected into the extraction
// prompt. Rules with a target_field apply to one field; rules without apply
// to the whole project.
type ExtractionRule struct{ ent.Schema }

func (ExtractionRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_rules"},
	}
}

func (ExtractionRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("rule_name").NotEmpty(),
		field.String("target_field").Optional(),
		field.String("rule_content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractionRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("rules").
			Field("project_id").
			Required().
			Unique(),
	}
}

func (ExtractionRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
	}
}

// KnowledgeDocument is reference material the user attaches to a project to
// steer extraction (glossaries, mapping tables, standards excerpts).
type KnowledgeDocument struct{ ent.Schema }

func (KnowledgeDocument) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "knowledge_documents"},
	}
}

func (KnowledgeDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("display_name").NotEmpty(),
		field.String("content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("target_field").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (KnowledgeDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("knowledge").
			Field("project_id").
			Required().
			Unique(),
	}
}

func (KnowledgeDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
	}
}
