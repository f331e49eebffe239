// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CollectionsColumns holds the columns for the "collections" table.
	CollectionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// CollectionsTable holds the schema information for the "collections" table.
	CollectionsTable = &schema.Table{
		Name:       "collections",
		Columns:    CollectionsColumns,
		PrimaryKey: []*schema.Column{CollectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "collections_projects_collections",
				Columns:    []*schema.Column{CollectionsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "collection_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{CollectionsColumns[4], CollectionsColumns[1]},
			},
		},
	}
	// CollectionPropertiesColumns holds the columns for the "collection_properties" table.
	CollectionPropertiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "property_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "collection_id", Type: field.TypeUUID},
	}
	// CollectionPropertiesTable holds the schema information for the "collection_properties" table.
	CollectionPropertiesTable = &schema.Table{
		Name:       "collection_properties",
		Columns:    CollectionPropertiesColumns,
		PrimaryKey: []*schema.Column{CollectionPropertiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "collection_properties_collections_properties",
				Columns:    []*schema.Column{CollectionPropertiesColumns[7]},
				RefColumns: []*schema.Column{CollectionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "collectionproperty_collection_id_name",
				Unique:  true,
				Columns: []*schema.Column{CollectionPropertiesColumns[7], CollectionPropertiesColumns[1]},
			},
		},
	}
	// ExtractionRulesColumns holds the columns for the "extraction_rules" table.
	ExtractionRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_name", Type: field.TypeString},
		{Name: "target_field", Type: field.TypeString, Nullable: true},
		{Name: "rule_content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ExtractionRulesTable holds the schema information for the "extraction_rules" table.
	ExtractionRulesTable = &schema.Table{
		Name:       "extraction_rules",
		Columns:    ExtractionRulesColumns,
		PrimaryKey: []*schema.Column{ExtractionRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_rules_projects_rules",
				Columns:    []*schema.Column{ExtractionRulesColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionrule_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ExtractionRulesColumns[6], ExtractionRulesColumns[4]},
			},
		},
	}
	// ExtractionSessionsColumns holds the columns for the "extraction_sessions" table.
	ExtractionSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "progress_message", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ExtractionSessionsTable holds the schema information for the "extraction_sessions" table.
	ExtractionSessionsTable = &schema.Table{
		Name:       "extraction_sessions",
		Columns:    ExtractionSessionsColumns,
		PrimaryKey: []*schema.Column{ExtractionSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_sessions_projects_sessions",
				Columns:    []*schema.Column{ExtractionSessionsColumns[10]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionsession_project_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionSessionsColumns[10], ExtractionSessionsColumns[2], ExtractionSessionsColumns[8]},
			},
		},
	}
	// KnowledgeDocumentsColumns holds the columns for the "knowledge_documents" table.
	KnowledgeDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "target_field", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// KnowledgeDocumentsTable holds the schema information for the "knowledge_documents" table.
	KnowledgeDocumentsTable = &schema.Table{
		Name:       "knowledge_documents",
		Columns:    KnowledgeDocumentsColumns,
		PrimaryKey: []*schema.Column{KnowledgeDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_documents_projects_knowledge",
				Columns:    []*schema.Column{KnowledgeDocumentsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgedocument_project_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeDocumentsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "inbox_address", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_inbox_address",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// SchemaFieldsColumns holds the columns for the "schema_fields" table.
	SchemaFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "field_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// SchemaFieldsTable holds the schema information for the "schema_fields" table.
	SchemaFieldsTable = &schema.Table{
		Name:       "schema_fields",
		Columns:    SchemaFieldsColumns,
		PrimaryKey: []*schema.Column{SchemaFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "schema_fields_projects_fields",
				Columns:    []*schema.Column{SchemaFieldsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "schemafield_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{SchemaFieldsColumns[8], SchemaFieldsColumns[1]},
			},
			{
				Name:    "schemafield_project_id_position",
				Unique:  false,
				Columns: []*schema.Column{SchemaFieldsColumns[8], SchemaFieldsColumns[6]},
			},
		},
	}
	// SessionDocumentsColumns holds the columns for the "session_documents" table.
	SessionDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "source", Type: field.TypeString, Default: "upload"},
		{Name: "extracted_content", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// SessionDocumentsTable holds the schema information for the "session_documents" table.
	SessionDocumentsTable = &schema.Table{
		Name:       "session_documents",
		Columns:    SessionDocumentsColumns,
		PrimaryKey: []*schema.Column{SessionDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "session_documents_extraction_sessions_documents",
				Columns:    []*schema.Column{SessionDocumentsColumns[8]},
				RefColumns: []*schema.Column{ExtractionSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sessiondocument_session_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SessionDocumentsColumns[8], SessionDocumentsColumns[4]},
			},
			{
				Name:    "sessiondocument_session_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{SessionDocumentsColumns[8], SessionDocumentsColumns[7]},
			},
		},
	}
	// ValidationRecordsColumns holds the columns for the "validation_records" table.
	ValidationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_id", Type: field.TypeUUID},
		{Name: "collection_id", Type: field.TypeUUID, Nullable: true},
		{Name: "record_index", Type: field.TypeInt, Default: 0},
		{Name: "field_name", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "validation_status", Type: field.TypeString, Default: "pending"},
		{Name: "confidence_score", Type: field.TypeInt, Default: 85},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeUUID},
	}
	// ValidationRecordsTable holds the schema information for the "validation_records" table.
	ValidationRecordsTable = &schema.Table{
		Name:       "validation_records",
		Columns:    ValidationRecordsColumns,
		PrimaryKey: []*schema.Column{ValidationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "validation_records_extraction_sessions_records",
				Columns:    []*schema.Column{ValidationRecordsColumns[11]},
				RefColumns: []*schema.Column{ExtractionSessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "validationrecord_session_id_field_id_record_index",
				Unique:  true,
				Columns: []*schema.Column{ValidationRecordsColumns[11], ValidationRecordsColumns[1], ValidationRecordsColumns[3]},
			},
			{
				Name:    "validationrecord_session_id_collection_id_record_index",
				Unique:  false,
				Columns: []*schema.Column{ValidationRecordsColumns[11], ValidationRecordsColumns[2], ValidationRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CollectionsTable,
		CollectionPropertiesTable,
		ExtractionRulesTable,
		ExtractionSessionsTable,
		KnowledgeDocumentsTable,
		ProjectsTable,
		SchemaFieldsTable,
		SessionDocumentsTable,
		ValidationRecordsTable,
	}
)

func init() {
	CollectionsTable.ForeignKeys[0].RefTable = ProjectsTable
	CollectionsTable.Annotation = &entsql.Annotation{
		Table: "collections",
	}
	CollectionPropertiesTable.ForeignKeys[0].RefTable = CollectionsTable
	CollectionPropertiesTable.Annotation = &entsql.Annotation{
		Table: "collection_properties",
	}
	ExtractionRulesTable.ForeignKeys[0].RefTable = ProjectsTable
	ExtractionRulesTable.Annotation = &entsql.Annotation{
		Table: "extraction_rules",
	}
	ExtractionSessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	ExtractionSessionsTable.Annotation = &entsql.Annotation{
		Table: "extraction_sessions",
	}
	KnowledgeDocumentsTable.ForeignKeys[0].RefTable = ProjectsTable
	KnowledgeDocumentsTable.Annotation = &entsql.Annotation{
		Table: "knowledge_documents",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	SchemaFieldsTable.ForeignKeys[0].RefTable = ProjectsTable
	SchemaFieldsTable.Annotation = &entsql.Annotation{
		Table: "schema_fields",
	}
	SessionDocumentsTable.ForeignKeys[0].RefTable = ExtractionSessionsTable
	SessionDocumentsTable.Annotation = &entsql.Annotation{
		Table: "session_documents",
	}
	ValidationRecordsTable.ForeignKeys[0].RefTable = ExtractionSessionsTable
	ValidationRecordsTable.Annotation = &entsql.Annotation{
		Table: "validation_records",
	}
}
