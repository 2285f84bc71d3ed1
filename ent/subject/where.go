// Code generated by ent, DO NOT EDIT.

package subject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rlopes/studypulse/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDifficulty, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldPriority, v))
}

// ExamAt applies equality check predicate on the "exam_at" field. It's identical to ExamAtEQ.
func ExamAt(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldExamAt, v))
}

// TargetScore applies equality check predicate on the "target_score" field. It's identical to TargetScoreEQ.
func TargetScore(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldTargetScore, v))
}

// Archived applies equality check predicate on the "archived" field. It's identical to ArchivedEQ.
func Archived(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArchived, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldName, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldDifficulty, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldPriority, v))
}

// ExamAtEQ applies the EQ predicate on the "exam_at" field.
func ExamAtEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldExamAt, v))
}

// ExamAtNEQ applies the NEQ predicate on the "exam_at" field.
func ExamAtNEQ(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldExamAt, v))
}

// ExamAtIn applies the In predicate on the "exam_at" field.
func ExamAtIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldExamAt, vs...))
}

// ExamAtNotIn applies the NotIn predicate on the "exam_at" field.
func ExamAtNotIn(vs ...time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldExamAt, vs...))
}

// ExamAtGT applies the GT predicate on the "exam_at" field.
func ExamAtGT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldExamAt, v))
}

// ExamAtGTE applies the GTE predicate on the "exam_at" field.
func ExamAtGTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldExamAt, v))
}

// ExamAtLT applies the LT predicate on the "exam_at" field.
func ExamAtLT(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldExamAt, v))
}

// ExamAtLTE applies the LTE predicate on the "exam_at" field.
func ExamAtLTE(v time.Time) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldExamAt, v))
}

// ExamAtIsNil applies the IsNil predicate on the "exam_at" field.
func ExamAtIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldExamAt))
}

// ExamAtNotNil applies the NotNil predicate on the "exam_at" field.
func ExamAtNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldExamAt))
}

// TargetScoreEQ applies the EQ predicate on the "target_score" field.
func TargetScoreEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldTargetScore, v))
}

// TargetScoreNEQ applies the NEQ predicate on the "target_score" field.
func TargetScoreNEQ(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldTargetScore, v))
}

// TargetScoreIn applies the In predicate on the "target_score" field.
func TargetScoreIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldTargetScore, vs...))
}

// TargetScoreNotIn applies the NotIn predicate on the "target_score" field.
func TargetScoreNotIn(vs ...float64) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldTargetScore, vs...))
}

// TargetScoreGT applies the GT predicate on the "target_score" field.
func TargetScoreGT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldTargetScore, v))
}

// TargetScoreGTE applies the GTE predicate on the "target_score" field.
func TargetScoreGTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldTargetScore, v))
}

// TargetScoreLT applies the LT predicate on the "target_score" field.
func TargetScoreLT(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldTargetScore, v))
}

// TargetScoreLTE applies the LTE predicate on the "target_score" field.
func TargetScoreLTE(v float64) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldTargetScore, v))
}

// ArchivedEQ applies the EQ predicate on the "archived" field.
func ArchivedEQ(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldArchived, v))
}

// ArchivedNEQ applies the NEQ predicate on the "archived" field.
func ArchivedNEQ(v bool) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldArchived, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
