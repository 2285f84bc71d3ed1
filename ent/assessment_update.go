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
	"github.com/rlopes/studypulse/ent/assessment"
	"github.com/rlopes/studypulse/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssessmentUpdate) SetSubjectID(v int) *AssessmentUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableSubjectID(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *AssessmentUpdate) AddSubjectID(v int) *AssessmentUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *AssessmentUpdate) SetTakenAt(v time.Time) *AssessmentUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTakenAt(v *time.Time) *AssessmentUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AssessmentUpdate) SetScorePercent(v float64) *AssessmentUpdate {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableScorePercent(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AssessmentUpdate) AddScorePercent(v float64) *AssessmentUpdate {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdate) SetTitle(v string) *AssessmentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableTitle(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AssessmentUpdate) ClearTitle() *AssessmentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.ScorePercent(); ok {
		if err := assessment.ScorePercentValidator(v); err != nil {
			return &ValidationError{Name: "score_percent", err: fmt.Errorf(`ent: validator failed for field "Assessment.score_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assessment.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(assessment.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(assessment.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(assessment.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(assessment.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(assessment.FieldTitle, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssessmentUpdateOne) SetSubjectID(v int) *AssessmentUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableSubjectID(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *AssessmentUpdateOne) AddSubjectID(v int) *AssessmentUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *AssessmentUpdateOne) SetTakenAt(v time.Time) *AssessmentUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTakenAt(v *time.Time) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// SetScorePercent sets the "score_percent" field.
func (_u *AssessmentUpdateOne) SetScorePercent(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetScorePercent()
	_u.mutation.SetScorePercent(v)
	return _u
}

// SetNillableScorePercent sets the "score_percent" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableScorePercent(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetScorePercent(*v)
	}
	return _u
}

// AddScorePercent adds value to the "score_percent" field.
func (_u *AssessmentUpdateOne) AddScorePercent(v float64) *AssessmentUpdateOne {
	_u.mutation.AddScorePercent(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssessmentUpdateOne) SetTitle(v string) *AssessmentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableTitle(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AssessmentUpdateOne) ClearTitle() *AssessmentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.ScorePercent(); ok {
		if err := assessment.ScorePercentValidator(v); err != nil {
			return &ValidationError{Name: "score_percent", err: fmt.Errorf(`ent: validator failed for field "Assessment.score_percent": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assessment.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(assessment.FieldSubjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(assessment.FieldTakenAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ScorePercent(); ok {
		_spec.SetField(assessment.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercent(); ok {
		_spec.AddField(assessment.FieldScorePercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assessment.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(assessment.FieldTitle, field.TypeString)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
