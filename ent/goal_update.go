// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rlopes/studypulse/ent/goal"
	"github.com/rlopes/studypulse/ent/predicate"
)

// GoalUpdate is the builder for updating Goal entities.
type GoalUpdate struct {
	config
	hooks    []Hook
	mutation *GoalMutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdate) Where(ps ...predicate.Goal) *GoalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *GoalUpdate) SetTitle(v string) *GoalUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTitle(v *string) *GoalUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GoalUpdate) SetSubjectID(v int) *GoalUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableSubjectID(v *int) *GoalUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *GoalUpdate) AddSubjectID(v int) *GoalUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *GoalUpdate) ClearSubjectID() *GoalUpdate {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *GoalUpdate) SetTargetValue(v float64) *GoalUpdate {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableTargetValue(v *float64) *GoalUpdate {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *GoalUpdate) AddTargetValue(v float64) *GoalUpdate {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *GoalUpdate) SetCurrentValue(v float64) *GoalUpdate {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableCurrentValue(v *float64) *GoalUpdate {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *GoalUpdate) AddCurrentValue(v float64) *GoalUpdate {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *GoalUpdate) SetDueAt(v time.Time) *GoalUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableDueAt(v *time.Time) *GoalUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *GoalUpdate) ClearDueAt() *GoalUpdate {
	_u.mutation.ClearDueAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdate) SetStatus(v string) *GoalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdate) SetNillableStatus(v *string) *GoalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdate) Mutation() *GoalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := goal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Goal.title": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(goal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(goal.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(goal.FieldSubjectID, field.TypeInt, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(goal.FieldSubjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(goal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(goal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(goal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(goal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(goal.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(goal.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalUpdateOne is the builder for updating a single Goal entity.
type GoalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalMutation
}

// SetTitle sets the "title" field.
func (_u *GoalUpdateOne) SetTitle(v string) *GoalUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTitle(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *GoalUpdateOne) SetSubjectID(v int) *GoalUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableSubjectID(v *int) *GoalUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *GoalUpdateOne) AddSubjectID(v int) *GoalUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (_u *GoalUpdateOne) ClearSubjectID() *GoalUpdateOne {
	_u.mutation.ClearSubjectID()
	return _u
}

// SetTargetValue sets the "target_value" field.
func (_u *GoalUpdateOne) SetTargetValue(v float64) *GoalUpdateOne {
	_u.mutation.ResetTargetValue()
	_u.mutation.SetTargetValue(v)
	return _u
}

// SetNillableTargetValue sets the "target_value" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableTargetValue(v *float64) *GoalUpdateOne {
	if v != nil {
		_u.SetTargetValue(*v)
	}
	return _u
}

// AddTargetValue adds value to the "target_value" field.
func (_u *GoalUpdateOne) AddTargetValue(v float64) *GoalUpdateOne {
	_u.mutation.AddTargetValue(v)
	return _u
}

// SetCurrentValue sets the "current_value" field.
func (_u *GoalUpdateOne) SetCurrentValue(v float64) *GoalUpdateOne {
	_u.mutation.ResetCurrentValue()
	_u.mutation.SetCurrentValue(v)
	return _u
}

// SetNillableCurrentValue sets the "current_value" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableCurrentValue(v *float64) *GoalUpdateOne {
	if v != nil {
		_u.SetCurrentValue(*v)
	}
	return _u
}

// AddCurrentValue adds value to the "current_value" field.
func (_u *GoalUpdateOne) AddCurrentValue(v float64) *GoalUpdateOne {
	_u.mutation.AddCurrentValue(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *GoalUpdateOne) SetDueAt(v time.Time) *GoalUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableDueAt(v *time.Time) *GoalUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// ClearDueAt clears the value of the "due_at" field.
func (_u *GoalUpdateOne) ClearDueAt() *GoalUpdateOne {
	_u.mutation.ClearDueAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *GoalUpdateOne) SetStatus(v string) *GoalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GoalUpdateOne) SetNillableStatus(v *string) *GoalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the GoalMutation object of the builder.
func (_u *GoalUpdateOne) Mutation() *GoalMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalUpdate builder.
func (_u *GoalUpdateOne) Where(ps ...predicate.Goal) *GoalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalUpdateOne) Select(field string, fields ...string) *GoalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Goal entity.
func (_u *GoalUpdateOne) Save(ctx context.Context) (*Goal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalUpdateOne) SaveX(ctx context.Context) *Goal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := goal.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Goal.title": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalUpdateOne) sqlSave(ctx context.Context) (_node *Goal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goal.Table, goal.Columns, sqlgraph.NewFieldSpec(goal.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Goal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goal.FieldID)
		for _, f := range fields {
			if !goal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goal.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(goal.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(goal.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(goal.FieldSubjectID, field.TypeInt, value)
	}
	if _u.mutation.SubjectIDCleared() {
		_spec.ClearField(goal.FieldSubjectID, field.TypeInt)
	}
	if value, ok := _u.mutation.TargetValue(); ok {
		_spec.SetField(goal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetValue(); ok {
		_spec.AddField(goal.FieldTargetValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentValue(); ok {
		_spec.SetField(goal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentValue(); ok {
		_spec.AddField(goal.FieldCurrentValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(goal.FieldDueAt, field.TypeTime, value)
	}
	if _u.mutation.DueAtCleared() {
		_spec.ClearField(goal.FieldDueAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(goal.FieldStatus, field.TypeString, value)
	}
	_node = &Goal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
