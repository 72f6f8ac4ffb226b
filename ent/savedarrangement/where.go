// Code generated by ent, DO NOT EDIT.

package savedarrangement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldAppID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldDescription, v))
}

// Merge applies equality check predicate on the "merge" field. It's identical to MergeEQ.
func Merge(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldMerge, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContainsFold(FieldAppID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContainsFold(FieldDescription, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldKind, vs...))
}

// MergeEQ applies the EQ predicate on the "merge" field.
func MergeEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldMerge, v))
}

// MergeNEQ applies the NEQ predicate on the "merge" field.
func MergeNEQ(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldMerge, v))
}

// MergeIn applies the In predicate on the "merge" field.
func MergeIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldMerge, vs...))
}

// MergeNotIn applies the NotIn predicate on the "merge" field.
func MergeNotIn(vs ...string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldMerge, vs...))
}

// MergeGT applies the GT predicate on the "merge" field.
func MergeGT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldMerge, v))
}

// MergeGTE applies the GTE predicate on the "merge" field.
func MergeGTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldMerge, v))
}

// MergeLT applies the LT predicate on the "merge" field.
func MergeLT(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldMerge, v))
}

// MergeLTE applies the LTE predicate on the "merge" field.
func MergeLTE(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldMerge, v))
}

// MergeContains applies the Contains predicate on the "merge" field.
func MergeContains(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContains(FieldMerge, v))
}

// MergeHasPrefix applies the HasPrefix predicate on the "merge" field.
func MergeHasPrefix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasPrefix(FieldMerge, v))
}

// MergeHasSuffix applies the HasSuffix predicate on the "merge" field.
func MergeHasSuffix(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldHasSuffix(FieldMerge, v))
}

// MergeEqualFold applies the EqualFold predicate on the "merge" field.
func MergeEqualFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEqualFold(FieldMerge, v))
}

// MergeContainsFold applies the ContainsFold predicate on the "merge" field.
func MergeContainsFold(v string) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldContainsFold(FieldMerge, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.SavedArrangement {
	return predicate.SavedArrangement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.SavedArrangement {
	return predicate.SavedArrangement(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SavedArrangement) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SavedArrangement) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SavedArrangement) predicate.SavedArrangement {
	return predicate.SavedArrangement(sql.NotPredicates(p))
}
