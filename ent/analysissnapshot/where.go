// Code generated by ent, DO NOT EDIT.

package analysissnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rlopes/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldKind, v))
}

// TakenAt applies equality check predicate on the "taken_at" field. It's identical to TakenAtEQ.
func TakenAt(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldContainsFold(FieldKind, v))
}

// TakenAtEQ applies the EQ predicate on the "taken_at" field.
func TakenAtEQ(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldEQ(FieldTakenAt, v))
}

// TakenAtNEQ applies the NEQ predicate on the "taken_at" field.
func TakenAtNEQ(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNEQ(FieldTakenAt, v))
}

// TakenAtIn applies the In predicate on the "taken_at" field.
func TakenAtIn(vs ...time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldIn(FieldTakenAt, vs...))
}

// TakenAtNotIn applies the NotIn predicate on the "taken_at" field.
func TakenAtNotIn(vs ...time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldNotIn(FieldTakenAt, vs...))
}

// TakenAtGT applies the GT predicate on the "taken_at" field.
func TakenAtGT(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGT(FieldTakenAt, v))
}

// TakenAtGTE applies the GTE predicate on the "taken_at" field.
func TakenAtGTE(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldGTE(FieldTakenAt, v))
}

// TakenAtLT applies the LT predicate on the "taken_at" field.
func TakenAtLT(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLT(FieldTakenAt, v))
}

// TakenAtLTE applies the LTE predicate on the "taken_at" field.
func TakenAtLTE(v time.Time) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.FieldLTE(FieldTakenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisSnapshot) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisSnapshot) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisSnapshot) predicate.AnalysisSnapshot {
	return predicate.AnalysisSnapshot(sql.NotPredicates(p))
}
