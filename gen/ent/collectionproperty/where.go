// Code generated by ent, DO NOT EDIT.

package collectionproperty

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLTE(FieldID, id))
}

// CollectionID applies equality check predicate on the "collection_id" field. It's identical to CollectionIDEQ.
func CollectionID(v uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldCollectionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldName, v))
}

// PropertyType applies equality check predicate on the "property_type" field. It's identical to PropertyTypeEQ.
func PropertyType(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldPropertyType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldDescription, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldRequired, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldPosition, v))
}

// CollectionIDEQ applies the EQ predicate on the "collection_id" field.
func CollectionIDEQ(v uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldCollectionID, v))
}

// CollectionIDNEQ applies the NEQ predicate on the "collection_id" field.
func CollectionIDNEQ(v uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldCollectionID, v))
}

// CollectionIDIn applies the In predicate on the "collection_id" field.
func CollectionIDIn(vs ...uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldCollectionID, vs...))
}

// CollectionIDNotIn applies the NotIn predicate on the "collection_id" field.
func CollectionIDNotIn(vs ...uuid.UUID) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldCollectionID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContainsFold(FieldName, v))
}

// PropertyTypeEQ applies the EQ predicate on the "property_type" field.
func PropertyTypeEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldPropertyType, v))
}

// PropertyTypeNEQ applies the NEQ predicate on the "property_type" field.
func PropertyTypeNEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldPropertyType, v))
}

// PropertyTypeIn applies the In predicate on the "property_type" field.
func PropertyTypeIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldPropertyType, vs...))
}

// PropertyTypeNotIn applies the NotIn predicate on the "property_type" field.
func PropertyTypeNotIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldPropertyType, vs...))
}

// PropertyTypeGT applies the GT predicate on the "property_type" field.
func PropertyTypeGT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGT(FieldPropertyType, v))
}

// PropertyTypeGTE applies the GTE predicate on the "property_type" field.
func PropertyTypeGTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGTE(FieldPropertyType, v))
}

// PropertyTypeLT applies the LT predicate on the "property_type" field.
func PropertyTypeLT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLT(FieldPropertyType, v))
}

// PropertyTypeLTE applies the LTE predicate on the "property_type" field.
func PropertyTypeLTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLTE(FieldPropertyType, v))
}

// PropertyTypeContains applies the Contains predicate on the "property_type" field.
func PropertyTypeContains(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContains(FieldPropertyType, v))
}

// PropertyTypeHasPrefix applies the HasPrefix predicate on the "property_type" field.
func PropertyTypeHasPrefix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasPrefix(FieldPropertyType, v))
}

// PropertyTypeHasSuffix applies the HasSuffix predicate on the "property_type" field.
func PropertyTypeHasSuffix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasSuffix(FieldPropertyType, v))
}

// PropertyTypeEqualFold applies the EqualFold predicate on the "property_type" field.
func PropertyTypeEqualFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEqualFold(FieldPropertyType, v))
}

// PropertyTypeContainsFold applies the ContainsFold predicate on the "property_type" field.
func PropertyTypeContainsFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContainsFold(FieldPropertyType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldContainsFold(FieldDescription, v))
}

// ChoicesIsNil applies the IsNil predicate on the "choices" field.
func ChoicesIsNil() predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIsNull(FieldChoices))
}

// ChoicesNotNil applies the NotNil predicate on the "choices" field.
func ChoicesNotNil() predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotNull(FieldChoices))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldRequired, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.FieldLTE(FieldPosition, v))
}

// HasCollection applies the HasEdge predicate on the "collection" edge.
func HasCollection() predicate.CollectionProperty {
	return predicate.CollectionProperty(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CollectionTable, CollectionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCollectionWith applies the HasEdge predicate on the "collection" edge with a given conditions (other predicates).
func HasCollectionWith(preds ...predicate.Collection) predicate.CollectionProperty {
	return predicate.CollectionProperty(func(s *sql.Selector) {
		step := newCollectionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CollectionProperty) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CollectionProperty) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CollectionProperty) predicate.CollectionProperty {
	return predicate.CollectionProperty(sql.NotPredicates(p))
}
