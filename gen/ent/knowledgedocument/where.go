// Code generated by ent, DO NOT EDIT.

package knowledgedocument

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldProjectID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldDisplayName, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldContent, v))
}

// TargetField applies equality check predicate on the "target_field" field. It's identical to TargetFieldEQ.
func TargetField(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldTargetField, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldProjectID, vs...))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContainsFold(FieldDisplayName, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContainsFold(FieldContent, v))
}

// TargetFieldEQ applies the EQ predicate on the "target_field" field.
func TargetFieldEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldTargetField, v))
}

// TargetFieldNEQ applies the NEQ predicate on the "target_field" field.
func TargetFieldNEQ(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldTargetField, v))
}

// TargetFieldIn applies the In predicate on the "target_field" field.
func TargetFieldIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldTargetField, vs...))
}

// TargetFieldNotIn applies the NotIn predicate on the "target_field" field.
func TargetFieldNotIn(vs ...string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldTargetField, vs...))
}

// TargetFieldGT applies the GT predicate on the "target_field" field.
func TargetFieldGT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGT(FieldTargetField, v))
}

// TargetFieldGTE applies the GTE predicate on the "target_field" field.
func TargetFieldGTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGTE(FieldTargetField, v))
}

// TargetFieldLT applies the LT predicate on the "target_field" field.
func TargetFieldLT(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLT(FieldTargetField, v))
}

// TargetFieldLTE applies the LTE predicate on the "target_field" field.
func TargetFieldLTE(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLTE(FieldTargetField, v))
}

// TargetFieldContains applies the Contains predicate on the "target_field" field.
func TargetFieldContains(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContains(FieldTargetField, v))
}

// TargetFieldHasPrefix applies the HasPrefix predicate on the "target_field" field.
func TargetFieldHasPrefix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasPrefix(FieldTargetField, v))
}

// TargetFieldHasSuffix applies the HasSuffix predicate on the "target_field" field.
func TargetFieldHasSuffix(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldHasSuffix(FieldTargetField, v))
}

// TargetFieldIsNil applies the IsNil predicate on the "target_field" field.
func TargetFieldIsNil() predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIsNull(FieldTargetField))
}

// TargetFieldNotNil applies the NotNil predicate on the "target_field" field.
func TargetFieldNotNil() predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotNull(FieldTargetField))
}

// TargetFieldEqualFold applies the EqualFold predicate on the "target_field" field.
func TargetFieldEqualFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEqualFold(FieldTargetField, v))
}

// TargetFieldContainsFold applies the ContainsFold predicate on the "target_field" field.
func TargetFieldContainsFold(v string) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldContainsFold(FieldTargetField, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KnowledgeDocument) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KnowledgeDocument) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KnowledgeDocument) predicate.KnowledgeDocument {
	return predicate.KnowledgeDocument(sql.NotPredicates(p))
}
