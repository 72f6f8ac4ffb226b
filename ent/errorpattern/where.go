// Code generated by ent, DO NOT EDIT.

package errorpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldID, id))
}

// AppID applies equality check predicate on the "app_id" field. It's identical to AppIDEQ.
func AppID(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldAppID, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSignature, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSource, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldKind, v))
}

// Occurrences applies equality check predicate on the "occurrences" field. It's identical to OccurrencesEQ.
func Occurrences(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldOccurrences, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// AppIDEQ applies the EQ predicate on the "app_id" field.
func AppIDEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldAppID, v))
}

// AppIDNEQ applies the NEQ predicate on the "app_id" field.
func AppIDNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldAppID, v))
}

// AppIDIn applies the In predicate on the "app_id" field.
func AppIDIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldAppID, vs...))
}

// AppIDNotIn applies the NotIn predicate on the "app_id" field.
func AppIDNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldAppID, vs...))
}

// AppIDGT applies the GT predicate on the "app_id" field.
func AppIDGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldAppID, v))
}

// AppIDGTE applies the GTE predicate on the "app_id" field.
func AppIDGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldAppID, v))
}

// AppIDLT applies the LT predicate on the "app_id" field.
func AppIDLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldAppID, v))
}

// AppIDLTE applies the LTE predicate on the "app_id" field.
func AppIDLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldAppID, v))
}

// AppIDContains applies the Contains predicate on the "app_id" field.
func AppIDContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldAppID, v))
}

// AppIDHasPrefix applies the HasPrefix predicate on the "app_id" field.
func AppIDHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldAppID, v))
}

// AppIDHasSuffix applies the HasSuffix predicate on the "app_id" field.
func AppIDHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldAppID, v))
}

// AppIDEqualFold applies the EqualFold predicate on the "app_id" field.
func AppIDEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldAppID, v))
}

// AppIDContainsFold applies the ContainsFold predicate on the "app_id" field.
func AppIDContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldAppID, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldSignature, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldSource, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldContainsFold(FieldKind, v))
}

// OccurrencesEQ applies the EQ predicate on the "occurrences" field.
func OccurrencesEQ(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldOccurrences, v))
}

// OccurrencesNEQ applies the NEQ predicate on the "occurrences" field.
func OccurrencesNEQ(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldOccurrences, v))
}

// OccurrencesIn applies the In predicate on the "occurrences" field.
func OccurrencesIn(vs ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldOccurrences, vs...))
}

// OccurrencesNotIn applies the NotIn predicate on the "occurrences" field.
func OccurrencesNotIn(vs ...int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldOccurrences, vs...))
}

// OccurrencesGT applies the GT predicate on the "occurrences" field.
func OccurrencesGT(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldOccurrences, v))
}

// OccurrencesGTE applies the GTE predicate on the "occurrences" field.
func OccurrencesGTE(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldOccurrences, v))
}

// OccurrencesLT applies the LT predicate on the "occurrences" field.
func OccurrencesLT(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldOccurrences, v))
}

// OccurrencesLTE applies the LTE predicate on the "occurrences" field.
func OccurrencesLTE(v int) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldOccurrences, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.FieldLTE(FieldLastSeen, v))
}

// HasApp applies the HasEdge predicate on the "app" edge.
func HasApp() predicate.ErrorPattern {
	return predicate.ErrorPattern(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AppTable, AppColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppWith applies the HasEdge predicate on the "app" edge with a given conditions (other predicates).
func HasAppWith(preds ...predicate.App) predicate.ErrorPattern {
	return predicate.ErrorPattern(func(s *sql.Selector) {
		step := newAppStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ErrorPattern) predicate.ErrorPattern {
	return predicate.ErrorPattern(sql.NotPredicates(p))
}
