// Code generated by ent, DO NOT EDIT.

package extractionrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldProjectID, v))
}

// RuleName applies equality check predicate on the "rule_name" field. It's identical to RuleNameEQ.
func RuleName(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRuleName, v))
}

// TargetField applies equality check predicate on the "target_field" field. It's identical to TargetFieldEQ.
func TargetField(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldTargetField, v))
}

// RuleContent applies equality check predicate on the "rule_content" field. It's identical to RuleContentEQ.
func RuleContent(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRuleContent, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...uuid.UUID) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldProjectID, vs...))
}

// RuleNameEQ applies the EQ predicate on the "rule_name" field.
func RuleNameEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRuleName, v))
}

// RuleNameNEQ applies the NEQ predicate on the "rule_name" field.
func RuleNameNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldRuleName, v))
}

// RuleNameIn applies the In predicate on the "rule_name" field.
func RuleNameIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldRuleName, vs...))
}

// RuleNameNotIn applies the NotIn predicate on the "rule_name" field.
func RuleNameNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldRuleName, vs...))
}

// RuleNameGT applies the GT predicate on the "rule_name" field.
func RuleNameGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldRuleName, v))
}

// RuleNameGTE applies the GTE predicate on the "rule_name" field.
func RuleNameGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldRuleName, v))
}

// RuleNameLT applies the LT predicate on the "rule_name" field.
func RuleNameLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldRuleName, v))
}

// RuleNameLTE applies the LTE predicate on the "rule_name" field.
func RuleNameLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldRuleName, v))
}

// RuleNameContains applies the Contains predicate on the "rule_name" field.
func RuleNameContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldRuleName, v))
}

// RuleNameHasPrefix applies the HasPrefix predicate on the "rule_name" field.
func RuleNameHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldRuleName, v))
}

// RuleNameHasSuffix applies the HasSuffix predicate on the "rule_name" field.
func RuleNameHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldRuleName, v))
}

// RuleNameEqualFold applies the EqualFold predicate on the "rule_name" field.
func RuleNameEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldRuleName, v))
}

// RuleNameContainsFold applies the ContainsFold predicate on the "rule_name" field.
func RuleNameContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldRuleName, v))
}

// TargetFieldEQ applies the EQ predicate on the "target_field" field.
func TargetFieldEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldTargetField, v))
}

// TargetFieldNEQ applies the NEQ predicate on the "target_field" field.
func TargetFieldNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldTargetField, v))
}

// TargetFieldIn applies the In predicate on the "target_field" field.
func TargetFieldIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldTargetField, vs...))
}

// TargetFieldNotIn applies the NotIn predicate on the "target_field" field.
func TargetFieldNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldTargetField, vs...))
}

// TargetFieldGT applies the GT predicate on the "target_field" field.
func TargetFieldGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldTargetField, v))
}

// TargetFieldGTE applies the GTE predicate on the "target_field" field.
func TargetFieldGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldTargetField, v))
}

// TargetFieldLT applies the LT predicate on the "target_field" field.
func TargetFieldLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldTargetField, v))
}

// TargetFieldLTE applies the LTE predicate on the "target_field" field.
func TargetFieldLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldTargetField, v))
}

// TargetFieldContains applies the Contains predicate on the "target_field" field.
func TargetFieldContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldTargetField, v))
}

// TargetFieldHasPrefix applies the HasPrefix predicate on the "target_field" field.
func TargetFieldHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldTargetField, v))
}

// TargetFieldHasSuffix applies the HasSuffix predicate on the "target_field" field.
func TargetFieldHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldTargetField, v))
}

// TargetFieldIsNil applies the IsNil predicate on the "target_field" field.
func TargetFieldIsNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIsNull(FieldTargetField))
}

// TargetFieldNotNil applies the NotNil predicate on the "target_field" field.
func TargetFieldNotNil() predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotNull(FieldTargetField))
}

// TargetFieldEqualFold applies the EqualFold predicate on the "target_field" field.
func TargetFieldEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldTargetField, v))
}

// TargetFieldContainsFold applies the ContainsFold predicate on the "target_field" field.
func TargetFieldContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldTargetField, v))
}

// RuleContentEQ applies the EQ predicate on the "rule_content" field.
func RuleContentEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldRuleContent, v))
}

// RuleContentNEQ applies the NEQ predicate on the "rule_content" field.
func RuleContentNEQ(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldRuleContent, v))
}

// RuleContentIn applies the In predicate on the "rule_content" field.
func RuleContentIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldRuleContent, vs...))
}

// RuleContentNotIn applies the NotIn predicate on the "rule_content" field.
func RuleContentNotIn(vs ...string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldRuleContent, vs...))
}

// RuleContentGT applies the GT predicate on the "rule_content" field.
func RuleContentGT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldRuleContent, v))
}

// RuleContentGTE applies the GTE predicate on the "rule_content" field.
func RuleContentGTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldRuleContent, v))
}

// RuleContentLT applies the LT predicate on the "rule_content" field.
func RuleContentLT(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldRuleContent, v))
}

// RuleContentLTE applies the LTE predicate on the "rule_content" field.
func RuleContentLTE(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldRuleContent, v))
}

// RuleContentContains applies the Contains predicate on the "rule_content" field.
func RuleContentContains(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContains(FieldRuleContent, v))
}

// RuleContentHasPrefix applies the HasPrefix predicate on the "rule_content" field.
func RuleContentHasPrefix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasPrefix(FieldRuleContent, v))
}

// RuleContentHasSuffix applies the HasSuffix predicate on the "rule_content" field.
func RuleContentHasSuffix(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldHasSuffix(FieldRuleContent, v))
}

// RuleContentEqualFold applies the EqualFold predicate on the "rule_content" field.
func RuleContentEqualFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEqualFold(FieldRuleContent, v))
}

// RuleContentContainsFold applies the ContainsFold predicate on the "rule_content" field.
func RuleContentContainsFold(v string) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldContainsFold(FieldRuleContent, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.ExtractionRule {
	return predicate.ExtractionRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.ExtractionRule {
	return predicate.ExtractionRule(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionRule) predicate.ExtractionRule {
	return predicate.ExtractionRule(sql.NotPredicates(p))
}
