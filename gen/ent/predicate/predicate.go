// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Collection is the predicate function for collection builders.
type Collection func(*sql.Selector)

// CollectionProperty is the predicate function for collectionproperty builders.
type CollectionProperty func(*sql.Selector)

// ExtractionRule is the predicate function for extractionrule builders.
type ExtractionRule func(*sql.Selector)

// ExtractionSession is the predicate function for extractionsession builders.
type ExtractionSession func(*sql.Selector)

// KnowledgeDocument is the predicate function for knowledgedocument builders.
type KnowledgeDocument func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SchemaField is the predicate function for schemafield builders.
type SchemaField func(*sql.Selector)

// SessionDocument is the predicate function for sessiondocument builders.
type SessionDocument func(*sql.Selector)

// ValidationRecord is the predicate function for validationrecord builders.
type ValidationRecord func(*sql.Selector)
