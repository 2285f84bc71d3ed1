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
	"github.com/rlopes/studypulse/ent/predicate"
	"github.com/rlopes/studypulse/ent/subject"
)

// SubjectUpdate is the builder for updating Subject entities.
type SubjectUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectMutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdate) Where(ps ...predicate.Subject) *SubjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SubjectUpdate) SetName(v string) *SubjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableName(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SubjectUpdate) SetDifficulty(v string) *SubjectUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableDifficulty(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubjectUpdate) SetPriority(v string) *SubjectUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillablePriority(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetExamAt sets the "exam_at" field.
func (_u *SubjectUpdate) SetExamAt(v time.Time) *SubjectUpdate {
	_u.mutation.SetExamAt(v)
	return _u
}

// SetNillableExamAt sets the "exam_at" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableExamAt(v *time.Time) *SubjectUpdate {
	if v != nil {
		_u.SetExamAt(*v)
	}
	return _u
}

// ClearExamAt clears the value of the "exam_at" field.
func (_u *SubjectUpdate) ClearExamAt() *SubjectUpdate {
	_u.mutation.ClearExamAt()
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *SubjectUpdate) SetTargetScore(v float64) *SubjectUpdate {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableTargetScore(v *float64) *SubjectUpdate {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *SubjectUpdate) AddTargetScore(v float64) *SubjectUpdate {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SubjectUpdate) SetArchived(v bool) *SubjectUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableArchived(v *bool) *SubjectUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdate) Mutation() *SubjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(subject.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subject.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamAt(); ok {
		_spec.SetField(subject.FieldExamAt, field.TypeTime, value)
	}
	if _u.mutation.ExamAtCleared() {
		_spec.ClearField(subject.FieldExamAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(subject.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(subject.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(subject.FieldArchived, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectUpdateOne is the builder for updating a single Subject entity.
type SubjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectMutation
}

// SetName sets the "name" field.
func (_u *SubjectUpdateOne) SetName(v string) *SubjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableName(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SubjectUpdateOne) SetDifficulty(v string) *SubjectUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableDifficulty(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *SubjectUpdateOne) SetPriority(v string) *SubjectUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillablePriority(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetExamAt sets the "exam_at" field.
func (_u *SubjectUpdateOne) SetExamAt(v time.Time) *SubjectUpdateOne {
	_u.mutation.SetExamAt(v)
	return _u
}

// SetNillableExamAt sets the "exam_at" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableExamAt(v *time.Time) *SubjectUpdateOne {
	if v != nil {
		_u.SetExamAt(*v)
	}
	return _u
}

// ClearExamAt clears the value of the "exam_at" field.
func (_u *SubjectUpdateOne) ClearExamAt() *SubjectUpdateOne {
	_u.mutation.ClearExamAt()
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *SubjectUpdateOne) SetTargetScore(v float64) *SubjectUpdateOne {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableTargetScore(v *float64) *SubjectUpdateOne {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *SubjectUpdateOne) AddTargetScore(v float64) *SubjectUpdateOne {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *SubjectUpdateOne) SetArchived(v bool) *SubjectUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableArchived(v *bool) *SubjectUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdateOne) Mutation() *SubjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdateOne) Where(ps ...predicate.Subject) *SubjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectUpdateOne) Select(field string, fields ...string) *SubjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subject entity.
func (_u *SubjectUpdateOne) Save(ctx context.Context) (*Subject, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdateOne) SaveX(ctx context.Context) *Subject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := subject.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subject.name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdateOne) sqlSave(ctx context.Context) (_node *Subject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subject.FieldID)
		for _, f := range fields {
			if !subject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subject.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(subject.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(subject.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(subject.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamAt(); ok {
		_spec.SetField(subject.FieldExamAt, field.TypeTime, value)
	}
	if _u.mutation.ExamAtCleared() {
		_spec.ClearField(subject.FieldExamAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(subject.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(subject.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(subject.FieldArchived, field.TypeBool, value)
	}
	_node = &Subject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
