// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/predicate"
	"github.com/rlopes/studypulse/ent/reviewitem"
	"github.com/rlopes/studypulse/ent/schema"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ReviewItemUpdate) SetTopic(v string) *ReviewItemUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableTopic(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewItemUpdate) SetSubjectID(v int) *ReviewItemUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableSubjectID(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *ReviewItemUpdate) AddSubjectID(v int) *ReviewItemUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ReviewItemUpdate) SetStrength(v float64) *ReviewItemUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableStrength(v *float64) *ReviewItemUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ReviewItemUpdate) AddStrength(v float64) *ReviewItemUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetInitialConfidence sets the "initial_confidence" field.
func (_u *ReviewItemUpdate) SetInitialConfidence(v int) *ReviewItemUpdate {
	_u.mutation.ResetInitialConfidence()
	_u.mutation.SetInitialConfidence(v)
	return _u
}

// SetNillableInitialConfidence sets the "initial_confidence" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableInitialConfidence(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetInitialConfidence(*v)
	}
	return _u
}

// AddInitialConfidence adds value to the "initial_confidence" field.
func (_u *ReviewItemUpdate) AddInitialConfidence(v int) *ReviewItemUpdate {
	_u.mutation.AddInitialConfidence(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewItemUpdate) SetDifficulty(v int) *ReviewItemUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableDifficulty(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewItemUpdate) AddDifficulty(v int) *ReviewItemUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdate) SetLastReviewedAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewItemUpdate) ClearLastReviewedAt() *ReviewItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdate) SetNextReviewAt(v time.Time) *ReviewItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdate) SetReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableReviewCount(v *int) *ReviewItemUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdate) AddReviewCount(v int) *ReviewItemUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewItemUpdate) SetStatus(v string) *ReviewItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewItemUpdate) SetNillableStatus(v *string) *ReviewItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *ReviewItemUpdate) SetHistory(v []schema.ReviewEventData) *ReviewItemUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ReviewItemUpdate) AppendHistory(v []schema.ReviewEventData) *ReviewItemUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ReviewItemUpdate) ClearHistory() *ReviewItemUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewitem.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(reviewitem.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(reviewitem.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(reviewitem.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialConfidence(); ok {
		_spec.SetField(reviewitem.FieldInitialConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialConfidence(); ok {
		_spec.AddField(reviewitem.FieldInitialConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewitem.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewitem.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(reviewitem.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewitem.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(reviewitem.FieldHistory, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetTopic sets the "topic" field.
func (_u *ReviewItemUpdateOne) SetTopic(v string) *ReviewItemUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableTopic(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewItemUpdateOne) SetSubjectID(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableSubjectID(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *ReviewItemUpdateOne) AddSubjectID(v int) *ReviewItemUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetStrength sets the "strength" field.
func (_u *ReviewItemUpdateOne) SetStrength(v float64) *ReviewItemUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableStrength(v *float64) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *ReviewItemUpdateOne) AddStrength(v float64) *ReviewItemUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetInitialConfidence sets the "initial_confidence" field.
func (_u *ReviewItemUpdateOne) SetInitialConfidence(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetInitialConfidence()
	_u.mutation.SetInitialConfidence(v)
	return _u
}

// SetNillableInitialConfidence sets the "initial_confidence" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableInitialConfidence(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetInitialConfidence(*v)
	}
	return _u
}

// AddInitialConfidence adds value to the "initial_confidence" field.
func (_u *ReviewItemUpdateOne) AddInitialConfidence(v int) *ReviewItemUpdateOne {
	_u.mutation.AddInitialConfidence(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewItemUpdateOne) SetDifficulty(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableDifficulty(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ReviewItemUpdateOne) AddDifficulty(v int) *ReviewItemUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewItemUpdateOne) SetLastReviewedAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ReviewItemUpdateOne) ClearLastReviewedAt() *ReviewItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewItemUpdateOne) SetNextReviewAt(v time.Time) *ReviewItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewItemUpdateOne) SetReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableReviewCount(v *int) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewItemUpdateOne) AddReviewCount(v int) *ReviewItemUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewItemUpdateOne) SetStatus(v string) *ReviewItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewItemUpdateOne) SetNillableStatus(v *string) *ReviewItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *ReviewItemUpdateOne) SetHistory(v []schema.ReviewEventData) *ReviewItemUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ReviewItemUpdateOne) AppendHistory(v []schema.ReviewEventData) *ReviewItemUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ReviewItemUpdateOne) ClearHistory() *ReviewItemUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// Mutation returns the ReviewItemMutation object of the builder.
func (_u *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (_u *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewItem entity.
func (_u *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewItemUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := reviewitem.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ReviewItem.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(reviewitem.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewitem.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(reviewitem.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(reviewitem.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(reviewitem.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialConfidence(); ok {
		_spec.SetField(reviewitem.FieldInitialConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialConfidence(); ok {
		_spec.AddField(reviewitem.FieldInitialConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewitem.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(reviewitem.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewitem.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewitem.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewitem.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reviewitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(reviewitem.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reviewitem.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(reviewitem.FieldHistory, field.TypeJSON)
	}
	_node = &ReviewItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
